package inquiry

import (
	"context"

	inquiryRepo "venuebook/database/repository/inquiry"
	"venuebook/models"
)

// InquiryService handles inquiry capture, listing and host status
// transitions (approve, deny, counter-offer).
type InquiryService interface {
	Create(ctx context.Context, in models.InquiryCreateInput) (string, error)
	List(ctx context.Context) ([]models.Inquiry, error)
	Patch(ctx context.Context, in models.InquiryPatchInput) error
}

// DefaultInquiryService is the production implementation.
type DefaultInquiryService struct {
	Repo inquiryRepo.InquiryRepository
}
