package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mociber/booking-api/internal/api/metrics"
	"github.com/mociber/booking-api/internal/core/catalog"
	"github.com/mociber/booking-api/internal/core/ports"
)

// Messages shown to the customer, carried over from the original app.
const (
	msgSubmitted = "Request Submitted! Want to give more info about your repair? Call our agent."
	msgDuplicate = "You have already submitted a similar request recently. Please wait or call our agent for assistance."
)

// RequestHandler handles booking submissions.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Submit handles POST /v1/requests.
//
// @Summary      Submit a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Booking form"
// @Success      201   {object}  submitRequestResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  submitRequestResponse
// @Failure      422   {object}  map[string]string
// @Router       /v1/requests [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := h.service.Submit(c.Request().Context(), ports.SubmitRequestInput{
		ServiceType:        req.ServiceType,
		ServiceCategory:    req.ServiceCategory,
		FullName:           req.FullName,
		PhoneNumber:        req.PhoneNumber,
		Address:            req.Address,
		ProblemDescription: req.ProblemDescription,
		Requester:          identity,
	})
	if err != nil {
		metrics.SubmissionDuration.WithLabelValues("rejected").Observe(time.Since(start).Seconds())
		return err
	}

	serviceType := catalog.Resolve(req.ServiceType)
	metrics.SubmissionsTotal.WithLabelValues(serviceType, string(result.Outcome)).Inc()
	metrics.SubmissionDuration.WithLabelValues(string(result.Outcome)).Observe(time.Since(start).Seconds())
	if result.StorageFailed {
		metrics.SubmissionBestEffortFailures.WithLabelValues("storage").Inc()
	}
	if result.NotifyFailed {
		metrics.SubmissionBestEffortFailures.WithLabelValues("webhook").Inc()
	}

	if result.Outcome == ports.OutcomeDuplicate {
		return c.JSON(http.StatusConflict, submitRequestResponse{
			Outcome:    string(ports.OutcomeDuplicate),
			Message:    msgDuplicate,
			AgentPhone: catalog.AgentPhone,
		})
	}

	return c.JSON(http.StatusCreated, submitRequestResponse{
		Outcome:    string(ports.OutcomeSubmitted),
		RequestID:  result.RequestID,
		Message:    msgSubmitted,
		AgentPhone: catalog.AgentPhone,
	})
}
