package domain

import (
	"errors"
	"time"
)

// RequestStatus is the lifecycle state of a service request. Only the initial
// state is assigned here; later transitions happen outside this system.
type RequestStatus string

const StatusPending RequestStatus = "Pending"

// DuplicateWindow is the trailing period during which a repeat submission
// with the same phone number and service type is rejected.
const DuplicateWindow = 10 * time.Minute

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrSessionNotFound = errors.New("session not found")
var ErrUnknownSubService = errors.New("unknown sub-service for category")

// ServiceRequest is a booking submitted by a customer for one of the catalog
// categories.
type ServiceRequest struct {
	ID                 string        `json:"id" bson:"_id,omitempty"`
	ServiceType        string        `json:"service_type" bson:"service_type"`
	ServiceCategory    string        `json:"service_category" bson:"service_category"`
	FullName           string        `json:"full_name" bson:"full_name"`
	PhoneNumber        string        `json:"phone_number" bson:"phone_number"`
	Address            string        `json:"address" bson:"address"`
	ProblemDescription string        `json:"problem_description" bson:"problem_description"`
	Status             RequestStatus `json:"status" bson:"status"`
	CreatedAt          time.Time     `json:"created_at" bson:"created_at"`
}
