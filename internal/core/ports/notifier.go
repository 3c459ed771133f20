package ports

import "context"

// Notification is the payload forwarded to the external automation endpoint.
// Field names are part of the webhook contract and must not change.
type Notification struct {
	ServiceType        string `json:"serviceType"`
	ServiceCategory    string `json:"serviceCategory"`
	FullName           string `json:"fullName"`
	PhoneNumber        string `json:"phoneNumber"`
	Address            string `json:"address"`
	ProblemDescription string `json:"problemDescription"`
	UserEmail          string `json:"userEmail"`
	UserID             string `json:"userId"`
	UserName           string `json:"userName"`
	Timestamp          string `json:"timestamp"`
	Source             string `json:"source"`
}

// Notifier delivers a notification to the automation webhook. Calls are
// best-effort: the submitter logs a failure and moves on, never retries.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
