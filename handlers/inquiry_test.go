package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"venuebook/models"
	"venuebook/services/inquiry"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeInquiryService struct {
	createID  string
	createErr error
	listed    []models.Inquiry
	listErr   error
	patchErr  error
	gotCreate *models.InquiryCreateInput
	gotPatch  *models.InquiryPatchInput
}

func (f *fakeInquiryService) Create(ctx context.Context, in models.InquiryCreateInput) (string, error) {
	f.gotCreate = &in
	return f.createID, f.createErr
}

func (f *fakeInquiryService) List(ctx context.Context) ([]models.Inquiry, error) {
	return f.listed, f.listErr
}

func (f *fakeInquiryService) Patch(ctx context.Context, in models.InquiryPatchInput) error {
	f.gotPatch = &in
	return f.patchErr
}

func newInquiryRouter(svc inquiry.InquiryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewInquiryHandler(svc, utils.GetLogger())
	r.POST("/api/inquiries", h.CreateInquiry)
	r.GET("/api/inquiries", h.ListInquiries)
	r.PATCH("/api/inquiries", h.PatchInquiry)
	r.GET("/api/inquiries/export", h.ExportInquiriesCSV)
	return r
}

func validInquiryBody() map[string]any {
	return map[string]any{
		"venueName":     "Test Hall",
		"clientName":    "A",
		"clientEmail":   "a@b.com",
		"priceRange":    []float64{1000, 10000},
		"selectedDates": []string{"2025-06-01"},
		"requirements": map[string]bool{
			"publiclySellingTickets": true,
			"backlineNeeded":         true,
		},
	}
}

func TestCreateInquiryHandler(t *testing.T) {
	svc := &fakeInquiryService{createID: primitive.NewObjectID().Hex()}
	r := newInquiryRouter(svc)

	rec := performJSON(t, r, http.MethodPost, "/api/inquiries", validInquiryBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success   bool   `json:"success"`
		InquiryID string `json:"inquiryId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, svc.createID, resp.InquiryID)

	require.NotNil(t, svc.gotCreate)
	assert.True(t, svc.gotCreate.Requirements.PubliclySellingTickets)
	assert.True(t, svc.gotCreate.Requirements.BacklineNeeded)
	assert.False(t, svc.gotCreate.Requirements.InsuranceNeeded)
}

func TestCreateInquiryHandlerRequiresDates(t *testing.T) {
	svc := &fakeInquiryService{createID: "x"}
	r := newInquiryRouter(svc)

	body := validInquiryBody()
	body["selectedDates"] = []string{}

	rec := performJSON(t, r, http.MethodPost, "/api/inquiries", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.gotCreate)
}

func TestListInquiriesHandler(t *testing.T) {
	svc := &fakeInquiryService{listed: []models.Inquiry{
		{VenueName: "Newest", Status: models.InquiryStatusPending},
		{VenueName: "Oldest", Status: models.InquiryStatusApproved},
	}}
	r := newInquiryRouter(svc)

	rec := performJSON(t, r, http.MethodGet, "/api/inquiries", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success   bool             `json:"success"`
		Inquiries []models.Inquiry `json:"inquiries"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Inquiries, 2)
	assert.Equal(t, "Newest", resp.Inquiries[0].VenueName)
}

func TestPatchInquiryHandlerMissingStatus(t *testing.T) {
	svc := &fakeInquiryService{}
	r := newInquiryRouter(svc)

	body := map[string]any{"inquiryId": primitive.NewObjectID().Hex()}
	rec := performJSON(t, r, http.MethodPatch, "/api/inquiries", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.gotPatch)
}

func TestPatchInquiryHandlerMissingID(t *testing.T) {
	svc := &fakeInquiryService{}
	r := newInquiryRouter(svc)

	body := map[string]any{"status": models.InquiryStatusApproved}
	rec := performJSON(t, r, http.MethodPatch, "/api/inquiries", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.gotPatch)
}

func TestPatchInquiryHandlerInvalidTransition(t *testing.T) {
	svc := &fakeInquiryService{patchErr: inquiry.ErrInvalidTransition}
	r := newInquiryRouter(svc)

	body := map[string]any{
		"inquiryId": primitive.NewObjectID().Hex(),
		"status":    models.InquiryStatusDenied,
	}
	rec := performJSON(t, r, http.MethodPatch, "/api/inquiries", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPatchInquiryHandlerNotFound(t *testing.T) {
	svc := &fakeInquiryService{patchErr: inquiry.ErrNotFound}
	r := newInquiryRouter(svc)

	body := map[string]any{
		"inquiryId": primitive.NewObjectID().Hex(),
		"status":    models.InquiryStatusApproved,
	}
	rec := performJSON(t, r, http.MethodPatch, "/api/inquiries", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatchInquiryHandlerSuccessMessage(t *testing.T) {
	svc := &fakeInquiryService{}
	r := newInquiryRouter(svc)

	body := map[string]any{
		"inquiryId": primitive.NewObjectID().Hex(),
		"status":    models.InquiryStatusApproved,
		"hostNotes": "see you there",
	}
	rec := performJSON(t, r, http.MethodPatch, "/api/inquiries", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Inquiry approved successfully", resp.Message)

	require.NotNil(t, svc.gotPatch)
	assert.Equal(t, "see you there", svc.gotPatch.HostNotes)
}

func TestPatchInquiryHandlerCounterOfferPassthrough(t *testing.T) {
	svc := &fakeInquiryService{}
	r := newInquiryRouter(svc)

	body := map[string]any{
		"inquiryId": primitive.NewObjectID().Hex(),
		"status":    models.InquiryStatusNegotiation,
		"hostCounterOffer": map[string]any{
			"proposedPrice": 5000,
			"proposedDates": []string{"2025-06-01", "2025-06-02"},
			"notes":         "alternative weekend",
		},
	}
	rec := performJSON(t, r, http.MethodPatch, "/api/inquiries", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.gotPatch)
	require.NotNil(t, svc.gotPatch.HostCounterOffer)
	assert.Equal(t, 5000.0, svc.gotPatch.HostCounterOffer.ProposedPrice)
	assert.Equal(t, []string{"2025-06-01", "2025-06-02"}, svc.gotPatch.HostCounterOffer.ProposedDates)
}

func TestExportInquiriesCSV(t *testing.T) {
	svc := &fakeInquiryService{listed: []models.Inquiry{
		{ID: primitive.NewObjectID(), VenueName: "Test Hall", Status: models.InquiryStatusPending},
	}}
	r := newInquiryRouter(svc)

	rec := performJSON(t, r, http.MethodGet, "/api/inquiries/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "Test Hall")
}
