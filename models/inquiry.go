package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inquiry statuses. An inquiry starts as "pending"; "approved" and
// "denied" are terminal, "negotiation" carries a host counter-offer and
// must still resolve to approved or denied.
const (
	InquiryStatusPending     = "pending"
	InquiryStatusApproved    = "approved"
	InquiryStatusDenied      = "denied"
	InquiryStatusNegotiation = "negotiation"
)

// ValidInquiryStatus reports whether s is a known inquiry status.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryStatusPending, InquiryStatusApproved, InquiryStatusDenied, InquiryStatusNegotiation:
		return true
	}
	return false
}

// Requirements is the flag map collected by the inquiry widget.
type Requirements struct {
	PubliclySellingTickets bool `bson:"publiclySellingTickets" json:"publiclySellingTickets"`
	RevenueSharing         bool `bson:"revenueSharing" json:"revenueSharing"`
	BacklineNeeded         bool `bson:"backlineNeeded" json:"backlineNeeded"`
	AudioEngineerNeeded    bool `bson:"audioEngineerNeeded" json:"audioEngineerNeeded"`
	LightingEngineerNeeded bool `bson:"lightingEngineerNeeded" json:"lightingEngineerNeeded"`
	InsuranceNeeded        bool `bson:"insuranceNeeded" json:"insuranceNeeded"`
	MerchandiseToSell      bool `bson:"merchandiseToSell" json:"merchandiseToSell"`
}

// CounterOffer is a host-proposed alternative price and set of dates
// attached to an inquiry in the "negotiation" state.
type CounterOffer struct {
	ProposedPrice float64     `bson:"proposedPrice" json:"proposedPrice"`
	ProposedDates []time.Time `bson:"proposedDates" json:"proposedDates"`
	Notes         string      `bson:"notes,omitempty" json:"notes,omitempty"`
}

// Inquiry represents a request-for-quote subject to host approval, denial
// or counter-offer negotiation. Inquiries are never deleted.
type Inquiry struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VenueName        string             `bson:"venueName" json:"venueName"`
	VenueType        string             `bson:"venueType,omitempty" json:"venueType,omitempty"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`
	ClientName       string             `bson:"clientName" json:"clientName"`
	ClientEmail      string             `bson:"clientEmail" json:"clientEmail"`
	ClientPhone      string             `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	EventDescription string             `bson:"eventDescription,omitempty" json:"eventDescription,omitempty"`
	EquipmentNeeded  string             `bson:"equipmentNeeded,omitempty" json:"equipmentNeeded,omitempty"`
	MaxCapacity      int                `bson:"maxCapacity" json:"maxCapacity"`
	PriceRange       [2]float64         `bson:"priceRange" json:"priceRange"`
	SelectedDates    []time.Time        `bson:"selectedDates" json:"selectedDates"`
	Requirements     Requirements       `bson:"requirements" json:"requirements"`
	Status           string             `bson:"status" json:"status"`
	HostNotes        string             `bson:"hostNotes,omitempty" json:"hostNotes,omitempty"`
	HostCounterOffer *CounterOffer      `bson:"hostCounterOffer,omitempty" json:"hostCounterOffer,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// InquiryCreateInput is the request body for submitting an inquiry.
// Dates arrive as ISO strings and are converted to time values on insert.
type InquiryCreateInput struct {
	VenueName        string       `json:"venueName" binding:"required"`
	VenueType        string       `json:"venueType"`
	Address          string       `json:"address"`
	ClientName       string       `json:"clientName" binding:"required"`
	ClientEmail      string       `json:"clientEmail" binding:"required"`
	ClientPhone      string       `json:"clientPhone"`
	EventDescription string       `json:"eventDescription"`
	EquipmentNeeded  string       `json:"equipmentNeeded"`
	MaxCapacity      FlexInt      `json:"maxCapacity"`
	PriceRange       [2]float64   `json:"priceRange"`
	SelectedDates    []string     `json:"selectedDates" binding:"required,min=1"`
	Requirements     Requirements `json:"requirements"`
}

// CounterOfferInput is the counter-offer as submitted by the dashboard,
// with dates still in string form.
type CounterOfferInput struct {
	ProposedPrice float64  `json:"proposedPrice"`
	ProposedDates []string `json:"proposedDates"`
	Notes         string   `json:"notes"`
}

// InquiryPatchInput is the request body for an inquiry status transition.
type InquiryPatchInput struct {
	InquiryID        string             `json:"inquiryId"`
	Status           string             `json:"status"`
	HostNotes        string             `json:"hostNotes"`
	HostCounterOffer *CounterOfferInput `json:"hostCounterOffer"`
}
