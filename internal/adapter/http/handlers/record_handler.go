package handlers

import (
	"net/http"

	request "motomind/internal/adapter/http/dto/request"
	response "motomind/internal/adapter/http/dto/response"
	"motomind/internal/adapter/http/middleware"
	"motomind/internal/domain/apperrors"
	"motomind/internal/usecase"

	"github.com/gin-gonic/gin"
)

const recordComponent = "record.handler"

// RecordHandler serves the service-record lifecycle of the authenticated
// workshop.
type RecordHandler struct {
	usecase usecase.IRecordUseCase
}

func NewRecordHandler(uc usecase.IRecordUseCase) *RecordHandler {
	return &RecordHandler{usecase: uc}
}

// ListRecords godoc
// @Summary List service records, newest first
// @Tags records
// @Produce json
// @Param page query int false "Page, starting at 1"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} response.RecordPageResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /records [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	var q request.ListRecordsRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	query, err := q.ToQuery()
	if err != nil {
		writeError(c, recordComponent, err)
		return
	}

	page, err := h.usecase.List(c.Request.Context(), middleware.WorkshopID(c), query)
	if err != nil {
		writeError(c, recordComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecordPage(page))
}

// CreateRecord godoc
// @Summary Create a draft service record
// @Tags records
// @Accept json
// @Produce json
// @Param record body request.RecordRequest true "Record"
// @Success 201 {object} response.RecordResponse
// @Failure 400 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /records [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	in, ok := bindRecord(c)
	if !ok {
		return
	}
	rec, err := h.usecase.Create(c.Request.Context(), middleware.WorkshopID(c), in)
	if err != nil {
		writeError(c, recordComponent, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromRecord(rec))
}

// GetRecord godoc
// @Summary Get a service record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.RecordResponse
// @Failure 404 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /records/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), middleware.WorkshopID(c), c.Param("id"))
	if err != nil {
		writeError(c, recordComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecord(rec))
}

// UpdateRecord godoc
// @Summary Replace the editable fields of a draft record
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body request.RecordRequest true "Record"
// @Success 200 {object} response.RecordResponse
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /records/{id} [put]
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	in, ok := bindRecord(c)
	if !ok {
		return
	}
	rec, err := h.usecase.Update(c.Request.Context(), middleware.WorkshopID(c), c.Param("id"), in)
	if err != nil {
		writeError(c, recordComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecord(rec))
}

// FinalizeRecord godoc
// @Summary Freeze a draft record into a bill
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.RecordResponse
// @Failure 409 {object} pkg.HTTPError
// @Security BearerAuth
// @Router /records/{id}/finalize [post]
func (h *RecordHandler) FinalizeRecord(c *gin.Context) {
	rec, err := h.usecase.Finalize(c.Request.Context(), middleware.WorkshopID(c), c.Param("id"))
	if err != nil {
		writeError(c, recordComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecord(rec))
}

// SendBill godoc
// @Summary Deliver a finalized bill through the messaging channel
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.DeliverResponse
// @Failure 409 {object} response.DeliverResponse
// @Failure 502 {object} response.DeliverResponse
// @Security BearerAuth
// @Router /records/{id}/send [post]
func (h *RecordHandler) SendBill(c *gin.Context) {
	res, err := h.usecase.Deliver(c.Request.Context(), middleware.WorkshopID(c), c.Param("id"))
	if err != nil {
		appErr := mapError(err)
		body := response.DeliverResponse{Success: false, Error: appErr.Message}
		if reason, ok := apperrors.DeliveryReason(err); ok {
			body.Reason = string(reason)
		}
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			writeError(c, recordComponent, err)
			return
		}
		c.JSON(appErr.HTTPStatus, body)
		return
	}
	c.JSON(http.StatusOK, response.DeliverResponse{Success: true, PaymentLink: res.PaymentLink})
}

func bindRecord(c *gin.Context) (usecase.RecordInput, bool) {
	var payload request.RecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return usecase.RecordInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, recordComponent, err)
		return usecase.RecordInput{}, false
	}
	return in, true
}
