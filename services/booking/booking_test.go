package booking

import (
	"context"
	"testing"

	"venuebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeBookingRepo struct {
	created   []models.Booking
	listed    []models.Booking
	conflicts []models.Booking
	lastSet   bson.M
	patched   *models.Booking
	patchErr  error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b models.Booking) (string, error) {
	f.created = append(f.created, b)
	return primitive.NewObjectID().Hex(), nil
}

func (f *fakeBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	return f.listed, nil
}

func (f *fakeBookingRepo) Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Booking, error) {
	f.lastSet = set
	if f.patchErr != nil {
		return nil, f.patchErr
	}
	return f.patched, nil
}

func (f *fakeBookingRepo) FindConflicting(ctx context.Context, venueName, date string, slots []string) ([]models.Booking, error) {
	return f.conflicts, nil
}

func (f *fakeBookingRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

func validCreateInput() models.BookingCreateInput {
	return models.BookingCreateInput{
		VenueName:   "Test Hall",
		ClientName:  "A",
		ClientEmail: "a@b.com",
		Date:        "2025-05-01",
		Duration:    2,
		Guests:      3,
	}
}

func TestCreateStampsStatusAndTimestamps(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	id, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, models.BookingStatusConfirmed, stored.Status)
	assert.Equal(t, 2, stored.Duration)
	assert.Equal(t, 3, stored.Guests)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

func TestCreateComputesAmountFromSlots(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	in := validCreateInput()
	in.TimeSlots = []string{"10:00", "17:00"}

	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, 75.0, stored.Amount)
	assert.Equal(t, "10:00, 17:00", stored.Time)
}

func TestCreateUnknownSlot(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}

	in := validCreateInput()
	in.TimeSlots = []string{"8:00"}

	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, ErrUnknownSlot)
}

func TestCreateSlotConflict(t *testing.T) {
	repo := &fakeBookingRepo{conflicts: []models.Booking{{VenueName: "Test Hall"}}}
	svc := &DefaultBookingService{Repo: repo}

	in := validCreateInput()
	in.TimeSlots = []string{"10:00"}

	_, err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, repo.created)
}

func TestPatchInvalidID(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}

	notes := "updated"
	_, err := svc.Patch(context.Background(), models.BookingPatchInput{BookingID: "not-a-hex-id", Notes: &notes})
	require.ErrorIs(t, err, ErrInvalidID)
}

func TestPatchNoFields(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}

	_, err := svc.Patch(context.Background(), models.BookingPatchInput{BookingID: primitive.NewObjectID().Hex()})
	require.ErrorIs(t, err, ErrNoFields)
}

func TestPatchInvalidStatus(t *testing.T) {
	svc := &DefaultBookingService{Repo: &fakeBookingRepo{}}

	status := "archived"
	_, err := svc.Patch(context.Background(), models.BookingPatchInput{
		BookingID: primitive.NewObjectID().Hex(),
		Status:    &status,
	})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestPatchSetsOnlySuppliedFields(t *testing.T) {
	repo := &fakeBookingRepo{patched: &models.Booking{}}
	svc := &DefaultBookingService{Repo: repo}

	notes := "bring own cables"
	_, err := svc.Patch(context.Background(), models.BookingPatchInput{
		BookingID: primitive.NewObjectID().Hex(),
		Notes:     &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"notes": "bring own cables"}, repo.lastSet)
}

func TestPatchNotFound(t *testing.T) {
	repo := &fakeBookingRepo{patchErr: mongo.ErrNoDocuments}
	svc := &DefaultBookingService{Repo: repo}

	notes := "x"
	_, err := svc.Patch(context.Background(), models.BookingPatchInput{
		BookingID: primitive.NewObjectID().Hex(),
		Notes:     &notes,
	})
	require.ErrorIs(t, err, ErrNotFound)
}
