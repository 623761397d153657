package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"motomind/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const workshopIDKey = "workshop_id"

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")

	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// JWTManager signs and validates workshop tokens. The workshop ID is the
// token subject.
type JWTManager struct {
	secretKey     []byte
	tokenDuration time.Duration
}

func NewJWTManager(secretKey string, tokenDuration time.Duration) *JWTManager {
	return &JWTManager{secretKey: []byte(secretKey), tokenDuration: tokenDuration}
}

// Generate issues a token for workshopID.
func (m *JWTManager) Generate(workshopID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   workshopID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	if m.tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.tokenDuration))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate returns the workshop ID carried by tokenString.
func (m *JWTManager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(claims.Subject), nil
}

// RequireWorkshop rejects requests without a valid bearer token and stores
// the workshop ID on the gin context. EventSource clients cannot set
// headers, so the access_token query parameter is accepted too.
func RequireWorkshop(m *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.WithDetail("reason", ErrMissingToken.Error()).ToHTTPError())
			return
		}
		workshopID, err := m.Validate(raw)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.WithDetail("reason", ErrInvalidToken.Error()).ToHTTPError())
			return
		}
		SetWorkshopID(c, workshopID)
		c.Next()
	}
}

// WorkshopID returns the authenticated workshop, or "" outside RequireWorkshop.
func WorkshopID(c *gin.Context) string {
	return c.GetString(workshopIDKey)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if v, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(c.Query("access_token"))
}

// SetWorkshopID stores an already authenticated workshop on the context.
func SetWorkshopID(c *gin.Context, workshopID string) {
	c.Set(workshopIDKey, workshopID)
}
