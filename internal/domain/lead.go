package domain

import "time"

// LeadKind distinguishes contact-form leads from quote requests.
type LeadKind string

const (
	LeadKindContact LeadKind = "CONTACT"
	LeadKindQuote   LeadKind = "QUOTE"
)

// LeadStatus tracks follow-up state for a captured lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "NEW"
	LeadStatusContacted LeadStatus = "CONTACTED"
	LeadStatusClosed    LeadStatus = "CLOSED"
)

// Lead is a captured contact or quote submission from the public site.
type Lead struct {
	ID           string
	Reference    string
	Kind         LeadKind
	Name         string
	Email        string
	Phone        string
	Message      string
	ServiceType  string
	PropertyType string
	Status       LeadStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
