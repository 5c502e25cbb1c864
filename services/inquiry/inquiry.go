package inquiry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venuebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// parseDate accepts the ISO forms the widgets submit: full RFC 3339
// timestamps or bare "2006-01-02" dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
}

func parseDates(in []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(in))
	for _, s := range in {
		t, err := parseDate(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, t)
	}
	return dates, nil
}

// Create inserts a new inquiry stamped as pending, converting the
// candidate date strings to date values.
func (s *DefaultInquiryService) Create(ctx context.Context, in models.InquiryCreateInput) (string, error) {
	dates, err := parseDates(in.SelectedDates)
	if err != nil {
		return "", err
	}

	now := time.Now()
	inquiry := models.Inquiry{
		VenueName:        in.VenueName,
		VenueType:        in.VenueType,
		Address:          in.Address,
		ClientName:       in.ClientName,
		ClientEmail:      in.ClientEmail,
		ClientPhone:      in.ClientPhone,
		EventDescription: in.EventDescription,
		EquipmentNeeded:  in.EquipmentNeeded,
		MaxCapacity:      in.MaxCapacity.Int(),
		PriceRange:       in.PriceRange,
		SelectedDates:    dates,
		Requirements:     in.Requirements,
		Status:           models.InquiryStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	return s.Repo.Create(ctx, inquiry)
}

// List returns all inquiries, newest first.
func (s *DefaultInquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	return s.Repo.List(ctx)
}

// Patch performs a host status transition, optionally attaching host
// notes and/or a counter-offer. Only the supplied fields are touched.
func (s *DefaultInquiryService) Patch(ctx context.Context, in models.InquiryPatchInput) error {
	id, err := primitive.ObjectIDFromHex(in.InquiryID)
	if err != nil {
		return ErrInvalidID
	}
	if !models.ValidInquiryStatus(in.Status) {
		return ErrInvalidStatus
	}

	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if !CanTransition(current.Status, in.Status) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, in.Status)
	}

	set := bson.M{"status": in.Status}
	if in.HostNotes != "" {
		set["hostNotes"] = in.HostNotes
	}
	if in.HostCounterOffer != nil {
		dates, err := parseDates(in.HostCounterOffer.ProposedDates)
		if err != nil {
			return err
		}
		set["hostCounterOffer"] = models.CounterOffer{
			ProposedPrice: in.HostCounterOffer.ProposedPrice,
			ProposedDates: dates,
			Notes:         in.HostCounterOffer.Notes,
		}
	}

	matched, err := s.Repo.Patch(ctx, id, set)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}
