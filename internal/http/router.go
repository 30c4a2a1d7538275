package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"bluevoyager/internal/availability"
	"bluevoyager/internal/checkout"
	intconfig "bluevoyager/internal/config"
	"bluevoyager/internal/flow"
	h "bluevoyager/internal/http/handlers"
	"bluevoyager/internal/http/middleware"
	"bluevoyager/internal/repositories"
	"bluevoyager/internal/services"
)

// NewRouter builds the gin engine and wires the stores and services the
// handlers act on.
func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.RateLimit(20, 40),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	// Availability chain: the fixed block-list always applies; with a
	// database configured, confirmed bookings also block days, and Redis
	// caches the lookups.
	var source availability.Source = availability.NewBlockList()
	if intconfig.DB != nil {
		repo := repositories.BookingRepository{}
		if err := repo.EnsureSchema(); err != nil {
			log.Printf("warning: ensure bookings schema: %v", err)
		}
		source = availability.MultiSource{availability.NewBlockList(), availability.BookingSource{Repo: repo}}
	}
	if intconfig.Redis != nil {
		source = availability.NewCachedSource(source, intconfig.Redis, 0)
	}

	flowStore := flow.NewStore(source)
	flowStore.OnConfirm = func(sess flow.Session) error {
		svc := services.BookingService{Repo: repositories.BookingRepository{DB: intconfig.DB}, RequestID: sess.ID}
		return svc.ConfirmFromFlow(sess)
	}

	checkoutClient := checkout.NewHTTPClient(env.CheckoutURL, env.CheckoutTimeout)

	h.SetFlowStore(flowStore)
	h.SetSelectionStore(flow.NewSelectionStore(), services.CheckoutService{Client: checkoutClient})
	h.SetAvailabilitySource(source)
	h.SetJWTSecret(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Catalog
		api.GET("/cabins", h.GetCabins)
		api.GET("/cabins/:id", h.GetCabinByID)
		api.GET("/voyages", h.GetVoyages)
		api.GET("/voyages/:id", h.GetVoyageByID)
		api.GET("/faqs", h.GetFAQs)
		api.GET("/dive-sites", h.GetDiveSites)
		api.GET("/itinerary-days", h.GetItinerary)

		// Availability
		api.GET("/calendar", h.GetCalendar)

		// Booking popup flow
		fl := api.Group("/flow")
		fl.POST("", h.OpenFlow)
		fl.GET("/:id", h.GetFlow)
		fl.POST("/:id/book", h.BookNow)
		fl.POST("/:id/calendar", h.OpenCalendar)
		fl.GET("/:id/calendar", h.GetFlowCalendar)
		fl.POST("/:id/calendar/navigate", h.NavigateCalendar)
		fl.POST("/:id/calendar/select", h.SelectCalendarDay)
		fl.POST("/:id/calendar/proceed", h.ProceedCalendar)
		fl.DELETE("/:id/calendar", h.CloseCalendar)
		fl.PUT("/:id/draft", h.UpdateDraft)
		fl.POST("/:id/confirm", h.ConfirmFlow)
		fl.DELETE("/:id", h.CancelFlow)

		// Cabin selection dialog
		sel := api.Group("/selection")
		sel.POST("", h.OpenSelection)
		sel.GET("/:id", h.GetSelection)
		sel.POST("/:id/toggle", h.ToggleSelection)
		sel.POST("/:id/guests", h.AdjustSelectionGuests)
		sel.POST("/:id/checkout", h.StartCheckout)
		sel.DELETE("/:id", h.CloseSelection)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Admin
		admin := api.Group("/bookings")
		admin.Use(middleware.Auth(env.JWTSecret), middleware.RequireRoles("owner", "admin"))
		admin.GET("", h.GetBookings)
		admin.GET("/:ref", h.GetBookingByReference)
		admin.GET("/:ref/voucher", h.GetBookingVoucher)
	}

	h.SetRouter(r)
	return r
}
