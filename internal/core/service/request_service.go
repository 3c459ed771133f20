package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mociber/booking-api/internal/core/catalog"
	"github.com/mociber/booking-api/internal/core/domain"
	"github.com/mociber/booking-api/internal/core/ports"
)

// RequestService implements the submission flow: duplicate check, write,
// webhook. Only the duplicate check can keep an attempt from resolving to
// the submitted outcome; the write and the webhook are best-effort.
type RequestService struct {
	repo     ports.RequestRepository
	notifier ports.Notifier
	now      func() time.Time
	logger   zerolog.Logger
}

func NewRequestService(repo ports.RequestRepository, notifier ports.Notifier, logger zerolog.Logger) *RequestService {
	return &RequestService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

// Submit runs one submission attempt. The input's service type is resolved
// through the catalog first: unknown types degrade to the default category
// instead of erroring. A sub-category outside the resolved type's list is the
// one local rejection, raised before any network call.
func (s *RequestService) Submit(ctx context.Context, input ports.SubmitRequestInput) (*ports.SubmitResult, error) {
	serviceType := catalog.Resolve(input.ServiceType)
	if !catalog.IsKnown(serviceType) {
		serviceType = catalog.DefaultKey
	}
	if !catalog.HasSubService(serviceType, input.ServiceCategory) {
		return nil, domain.ErrUnknownSubService
	}

	now := s.now().UTC()

	// Duplicate window check. A failing check is logged and the attempt
	// proceeds: it gates repeats, not correctness.
	since := now.Add(-domain.DuplicateWindow)
	count, err := s.repo.CountRecent(ctx, input.PhoneNumber, serviceType, since)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("phone_number", input.PhoneNumber).
			Str("service_type", serviceType).
			Msg("duplicate check failed, proceeding anyway")
	} else if count > 0 {
		s.logger.Info().
			Str("phone_number", input.PhoneNumber).
			Str("service_type", serviceType).
			Int64("recent", count).
			Msg("duplicate request rejected")
		return &ports.SubmitResult{Outcome: ports.OutcomeDuplicate}, nil
	}

	result := &ports.SubmitResult{Outcome: ports.OutcomeSubmitted}

	request := &domain.ServiceRequest{
		ID:                 uuid.NewString(),
		ServiceType:        serviceType,
		ServiceCategory:    input.ServiceCategory,
		FullName:           input.FullName,
		PhoneNumber:        input.PhoneNumber,
		Address:            input.Address,
		ProblemDescription: input.ProblemDescription,
		Status:             domain.StatusPending,
		CreatedAt:          now,
	}

	// Fire-and-forget write: a storage failure is flagged for observability
	// but never surfaced as a submission failure.
	if err := s.repo.Insert(ctx, request); err != nil {
		s.logger.Error().Err(err).Str("request_id", request.ID).Msg("failed to store request")
		result.StorageFailed = true
	} else {
		result.RequestID = request.ID
	}

	notification := ports.Notification{
		ServiceType:        serviceType,
		ServiceCategory:    input.ServiceCategory,
		FullName:           input.FullName,
		PhoneNumber:        input.PhoneNumber,
		Address:            input.Address,
		ProblemDescription: input.ProblemDescription,
		UserEmail:          input.Requester.EmailOrPhone,
		UserID:             input.Requester.ID,
		UserName:           input.Requester.Name,
		Timestamp:          now.Format(time.RFC3339),
	}
	if err := s.notifier.Notify(ctx, notification); err != nil {
		s.logger.Error().Err(err).Str("request_id", request.ID).Msg("webhook notification failed")
		result.NotifyFailed = true
	}

	s.logger.Info().
		Str("request_id", request.ID).
		Str("service_type", serviceType).
		Bool("storage_failed", result.StorageFailed).
		Bool("notify_failed", result.NotifyFailed).
		Msg("request submitted")

	return result, nil
}
