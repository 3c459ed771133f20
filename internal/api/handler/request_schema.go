package handler

// submitRequestRequest is the booking form. Every field is validated locally
// before the service layer touches storage or the webhook.
type submitRequestRequest struct {
	ServiceType        string `json:"service_type"        validate:"required"`
	ServiceCategory    string `json:"service_category"    validate:"required"`
	FullName           string `json:"full_name"           validate:"required,min=2"`
	PhoneNumber        string `json:"phone_number"        validate:"required,min=10,max=15"`
	Address            string `json:"address"             validate:"required,min=5"`
	ProblemDescription string `json:"problem_description" validate:"max=2000"`
}

// submitRequestResponse reports the terminal outcome of one attempt. The
// duplicate outcome is the only non-success a client will ever see here.
type submitRequestResponse struct {
	Outcome    string `json:"outcome"`
	RequestID  string `json:"request_id,omitempty"`
	Message    string `json:"message"`
	AgentPhone string `json:"agent_phone,omitempty"`
}
