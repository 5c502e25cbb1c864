package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func writeCSV(c *gin.Context, filename string, header []string, rows [][]string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write(header)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
}

// ExportBookingsCSV handles GET /api/bookings/export.
func (h *BookingHandler) ExportBookingsCSV(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("Error exporting bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to export bookings")
		return
	}

	header := []string{"id", "venueName", "venueType", "clientName", "clientEmail", "clientPhone", "date", "time", "duration", "guests", "status", "amount", "createdAt"}
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			b.ID.Hex(),
			b.VenueName,
			b.VenueType,
			b.ClientName,
			b.ClientEmail,
			b.ClientPhone,
			b.Date,
			b.Time,
			fmt.Sprintf("%d", b.Duration),
			fmt.Sprintf("%d", b.Guests),
			b.Status,
			fmt.Sprintf("%.2f", b.Amount),
			b.CreatedAt.Format(time.RFC3339),
		})
	}
	writeCSV(c, "bookings.csv", header, rows)
}

// ExportInquiriesCSV handles GET /api/inquiries/export.
func (h *InquiryHandler) ExportInquiriesCSV(c *gin.Context) {
	inquiries, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("Error exporting inquiries", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to export inquiries")
		return
	}

	header := []string{"id", "venueName", "clientName", "clientEmail", "clientPhone", "eventDescription", "maxCapacity", "priceMin", "priceMax", "selectedDates", "status", "createdAt"}
	rows := make([][]string, 0, len(inquiries))
	for _, inq := range inquiries {
		dates := make([]string, 0, len(inq.SelectedDates))
		for _, d := range inq.SelectedDates {
			dates = append(dates, d.Format("2006-01-02"))
		}
		rows = append(rows, []string{
			inq.ID.Hex(),
			inq.VenueName,
			inq.ClientName,
			inq.ClientEmail,
			inq.ClientPhone,
			inq.EventDescription,
			fmt.Sprintf("%d", inq.MaxCapacity),
			fmt.Sprintf("%.2f", inq.PriceRange[0]),
			fmt.Sprintf("%.2f", inq.PriceRange[1]),
			strings.Join(dates, "; "),
			inq.Status,
			inq.CreatedAt.Format(time.RFC3339),
		})
	}
	writeCSV(c, "inquiries.csv", header, rows)
}
