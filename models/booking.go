package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking represents a reservation captured by the booking widget.
// Bookings are created as "confirmed" and mutated only through the
// dashboard patch endpoint; they are never deleted.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VenueName   string             `bson:"venueName" json:"venueName"`
	VenueType   string             `bson:"venueType,omitempty" json:"venueType,omitempty"`
	Address     string             `bson:"address,omitempty" json:"address,omitempty"`
	ClientName  string             `bson:"clientName" json:"clientName"`
	ClientEmail string             `bson:"clientEmail" json:"clientEmail"`
	ClientPhone string             `bson:"clientPhone,omitempty" json:"clientPhone,omitempty"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time,omitempty" json:"time,omitempty"`
	TimeSlots   []string           `bson:"timeSlots,omitempty" json:"timeSlots,omitempty"`
	Duration    int                `bson:"duration" json:"duration"`
	Guests      int                `bson:"guests" json:"guests"`
	Notes       string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Status      string             `bson:"status" json:"status"`
	Amount      float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BookingCreateInput is the request body for creating a booking. Amount is
// deliberately absent: the total is computed server-side from the selected
// time slots and a client-submitted total is never trusted.
type BookingCreateInput struct {
	VenueName   string   `json:"venueName" binding:"required"`
	VenueType   string   `json:"venueType"`
	Address     string   `json:"address"`
	ClientName  string   `json:"clientName" binding:"required"`
	ClientEmail string   `json:"clientEmail" binding:"required"`
	ClientPhone string   `json:"clientPhone"`
	Date        string   `json:"date" binding:"required"`
	Time        string   `json:"time"`
	TimeSlots   []string `json:"timeSlots"`
	Duration    FlexInt  `json:"duration"`
	Guests      FlexInt  `json:"guests"`
	Notes       string   `json:"notes"`
}

// BookingPatchInput is the request body for patching a booking. The
// pointer fields double as the allow-list of mutable fields: anything
// else in the body is dropped at decode time.
type BookingPatchInput struct {
	BookingID   string   `json:"bookingId"`
	VenueName   *string  `json:"venueName"`
	VenueType   *string  `json:"venueType"`
	Address     *string  `json:"address"`
	ClientName  *string  `json:"clientName"`
	ClientEmail *string  `json:"clientEmail"`
	ClientPhone *string  `json:"clientPhone"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Duration    *FlexInt `json:"duration"`
	Guests      *FlexInt `json:"guests"`
	Notes       *string  `json:"notes"`
	Status      *string  `json:"status"`
	Amount      *float64 `json:"amount"`
}
