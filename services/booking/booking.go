package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"venuebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking stamped as confirmed. When time slots are
// supplied, the amount is computed from the slot price table and the
// requested slots are checked against existing bookings for the same
// venue and date.
func (s *DefaultBookingService) Create(ctx context.Context, in models.BookingCreateInput) (string, error) {
	var amount float64
	if len(in.TimeSlots) > 0 {
		quoted, err := QuoteSlots(in.TimeSlots)
		if err != nil {
			return "", err
		}
		amount = quoted

		conflicts, err := s.Repo.FindConflicting(ctx, in.VenueName, in.Date, in.TimeSlots)
		if err != nil {
			return "", err
		}
		if len(conflicts) > 0 {
			return "", ErrSlotTaken
		}
	}

	bookingTime := in.Time
	if bookingTime == "" && len(in.TimeSlots) > 0 {
		bookingTime = strings.Join(in.TimeSlots, ", ")
	}

	now := time.Now()
	booking := models.Booking{
		VenueName:   in.VenueName,
		VenueType:   in.VenueType,
		Address:     in.Address,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		Date:        in.Date,
		Time:        bookingTime,
		TimeSlots:   in.TimeSlots,
		Duration:    in.Duration.Int(),
		Guests:      in.Guests.Int(),
		Notes:       in.Notes,
		Status:      models.BookingStatusConfirmed,
		Amount:      amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return s.Repo.Create(ctx, booking)
}

// List returns all bookings, newest first.
func (s *DefaultBookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.List(ctx)
}

// Patch merges the supplied allow-listed fields into the stored booking
// and returns the updated document.
func (s *DefaultBookingService) Patch(ctx context.Context, in models.BookingPatchInput) (*models.Booking, error) {
	id, err := primitive.ObjectIDFromHex(in.BookingID)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{}
	if in.VenueName != nil {
		set["venueName"] = *in.VenueName
	}
	if in.VenueType != nil {
		set["venueType"] = *in.VenueType
	}
	if in.Address != nil {
		set["address"] = *in.Address
	}
	if in.ClientName != nil {
		set["clientName"] = *in.ClientName
	}
	if in.ClientEmail != nil {
		set["clientEmail"] = *in.ClientEmail
	}
	if in.ClientPhone != nil {
		set["clientPhone"] = *in.ClientPhone
	}
	if in.Date != nil {
		set["date"] = *in.Date
	}
	if in.Time != nil {
		set["time"] = *in.Time
	}
	if in.Duration != nil {
		set["duration"] = in.Duration.Int()
	}
	if in.Guests != nil {
		set["guests"] = in.Guests.Int()
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
	}
	if in.Status != nil {
		if !models.ValidBookingStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		set["status"] = *in.Status
	}
	if in.Amount != nil {
		set["amount"] = *in.Amount
	}
	if len(set) == 0 {
		return nil, ErrNoFields
	}

	updated, err := s.Repo.Patch(ctx, id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}
