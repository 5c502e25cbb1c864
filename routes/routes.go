package routes

import (
	"net/http"
	"time"

	"venuebook/handlers"
	"venuebook/middleware"
	"venuebook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired in main. Attachments is nil
// when Cloudinary is not configured; Verification is nil when Redis is
// not available.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Inquiry      *handlers.InquiryHandler
	Verification *handlers.VerificationHandler
	Attachments  *handlers.AttachmentHandler
	Admin        *handlers.AdminHandler
}

// RegisterBookingRoutes registers the booking widget and dashboard
// endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)

		// Operator endpoints; guarded only when admin auth is configured.
		api.PATCH("", middleware.AdminAuthMiddleware(), hb.Booking.PatchBooking)
		api.GET("/export", middleware.AdminAuthMiddleware(), hb.Booking.ExportBookingsCSV)
	}
}

// RegisterInquiryRoutes registers the inquiry widget and dashboard
// endpoints.
func RegisterInquiryRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/inquiries")
	{
		api.POST("", hb.Inquiry.CreateInquiry)
		api.GET("", hb.Inquiry.ListInquiries)

		if hb.Attachments != nil {
			api.POST("/attachments", hb.Attachments.UploadAttachment)
		}

		api.PATCH("", middleware.AdminAuthMiddleware(), hb.Inquiry.PatchInquiry)
		api.GET("/export", middleware.AdminAuthMiddleware(), hb.Inquiry.ExportInquiriesCSV)
	}
}

// RegisterVerificationRoutes registers the phone verification endpoints
// used by the booking widget.
func RegisterVerificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	if hb.Verification == nil {
		return
	}
	api := r.Group("/api/verification")
	{
		api.POST("/send", hb.Verification.SendCode)
		api.POST("/verify", hb.Verification.VerifyCode)
	}
}

// RegisterAdminRoutes registers the operator login endpoint.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.Login)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and
// middleware. CORS is wide open: the widgets are embedded on arbitrary
// third-party origins.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterInquiryRoutes(r, hb)
	RegisterVerificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
