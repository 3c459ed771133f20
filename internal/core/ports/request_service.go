package ports

import (
	"context"

	"github.com/mociber/booking-api/internal/core/domain"
)

// SubmitRequestInput is the validated draft passed from the transport layer.
// Requester identifies the authenticated customer; the remaining fields are
// the submitted form.
type SubmitRequestInput struct {
	ServiceType        string
	ServiceCategory    string
	FullName           string
	PhoneNumber        string
	Address            string
	ProblemDescription string
	Requester          domain.Identity
}

// SubmitOutcome is the terminal state of one submission attempt.
type SubmitOutcome string

const (
	// OutcomeSubmitted is reached by every attempt that passes the duplicate
	// check, even when the write or the webhook failed.
	OutcomeSubmitted SubmitOutcome = "submitted"
	// OutcomeDuplicate means a matching request existed inside the duplicate
	// window; nothing was written and no webhook fired.
	OutcomeDuplicate SubmitOutcome = "duplicate"
)

// SubmitResult carries the outcome plus diagnostic flags for the two
// best-effort steps. The flags are for logs and metrics only; they never
// change the user-visible outcome.
type SubmitResult struct {
	Outcome       SubmitOutcome
	RequestID     string
	StorageFailed bool
	NotifyFailed  bool
}

// RequestService accepts booking submissions.
type RequestService interface {
	Submit(ctx context.Context, input SubmitRequestInput) (*SubmitResult, error)
}
