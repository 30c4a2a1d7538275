package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bluevoyager/internal/http/middleware"
	"bluevoyager/internal/repositories"
	"bluevoyager/internal/services"
	"bluevoyager/internal/utils"
)

// GET /api/bookings?limit=50
func GetBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	reqID := middleware.GetRequestID(c)
	utils.LogEvent(reqID, "bookings", "admin_list", fmt.Sprintf("user_id=%d limit=%d", middleware.UserID(c), limit))

	svc := services.BookingService{Repo: repositories.BookingRepository{}, RequestID: reqID}
	out, err := svc.List(limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out, "count": len(out)})
}

// GET /api/bookings/:ref
func GetBookingByReference(c *gin.Context) {
	svc := services.BookingService{Repo: repositories.BookingRepository{}, RequestID: middleware.GetRequestID(c)}
	b, err := svc.GetByReference(c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// GET /api/bookings/:ref/voucher
func GetBookingVoucher(c *gin.Context) {
	svc := services.DocsService{BookingRepo: repositories.BookingRepository{}, RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateVoucher(c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
