package domain

import "strings"

// Broker request lifecycle. Requests are created by the broker-facing form,
// then either approved (published as a Listing by the backend) or rejected
// (terminal, with an optional note). They never transition backward.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"

	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// BrokerRequest is a listing submission awaiting admin review. It carries the
// full listing shape plus the submitting broker's contact details.
type BrokerRequest struct {
	Listing

	BrokerName  string `json:"broker_name,omitempty"`
	BrokerEmail string `json:"broker_email,omitempty"`
	BrokerPhone string `json:"broker_phone,omitempty"`
	AdminNote   string `json:"admin_note,omitempty"`
}

// RequestBadgeClass maps a request status to its bootstrap badge class;
// anything unrecognized renders as pending.
func RequestBadgeClass(status string) string {
	switch strings.ToLower(status) {
	case RequestApproved:
		return "bg-success"
	case RequestRejected:
		return "bg-danger"
	default:
		return "bg-warning text-dark"
	}
}

// ValidDecision reports whether the action is one of the two admin decisions.
func ValidDecision(action string) bool {
	return action == DecisionApprove || action == DecisionReject
}
