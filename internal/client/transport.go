package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"time"

	response "motomind/internal/adapter/http/dto/response"
	"motomind/internal/domain/apperrors"
	"motomind/pkg"
)

const defaultHTTPTimeout = 15 * time.Second

// doJSON sends one authenticated JSON request. On a non-2xx status the body
// is still decoded into out when possible, and the returned error carries the
// mapped taxonomy error.
func doJSON(ctx context.Context, hc *http.Client, baseURL string, id Identity, method, path string, q url.Values, in, out any) error {
	tok, err := bearer(ctx, id)
	if err != nil {
		return err
	}

	u, err := url.Parse(baseURL + path)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrNetwork, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", apperrors.ErrNetwork, path, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out != nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, out); err != nil {
				return fmt.Errorf("decode %s: %w", path, err)
			}
		}
		return nil
	}
	if out != nil {
		_ = json.Unmarshal(raw, out)
	}
	return statusError(resp.StatusCode, raw)
}

// statusError maps a non-2xx response back onto the error taxonomy.
func statusError(status int, raw []byte) error {
	var envelope pkg.HTTPError
	var deliver response.DeliverResponse
	_ = json.Unmarshal(raw, &envelope)
	_ = json.Unmarshal(raw, &deliver)

	msg := envelope.Message
	if msg == "" {
		msg = deliver.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", apperrors.ErrAuth, msg)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		if keys := slices.Sorted(maps.Keys(envelope.Details)); len(keys) > 0 {
			return apperrors.Invalid(keys[0], envelope.Details[keys[0]])
		}
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, msg)
	case status == http.StatusConflict:
		reason := deliver.Reason
		if reason == "" {
			reason = envelope.Details["reason"]
		}
		if reason != "" {
			return apperrors.NotDeliverable(apperrors.DeliveryBlockReason(reason), msg)
		}
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidState, msg)
	case status >= http.StatusInternalServerError || status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d: %s", apperrors.ErrNetwork, status, msg)
	}
	return errors.New(msg)
}
