package booking

import (
	"context"

	bookingRepo "venuebook/database/repository/booking"
	"venuebook/models"
)

// BookingService handles booking capture, listing and dashboard edits.
type BookingService interface {
	Create(ctx context.Context, in models.BookingCreateInput) (string, error)
	List(ctx context.Context) ([]models.Booking, error)
	Patch(ctx context.Context, in models.BookingPatchInput) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
