package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluevoyager/internal/flow"
	"bluevoyager/internal/http/middleware"
	"bluevoyager/internal/services"
)

var (
	selectionStore *flow.SelectionStore
	checkoutSvc    services.CheckoutService
)

// SetSelectionStore wires the dialog store and the checkout service.
func SetSelectionStore(st *flow.SelectionStore, svc services.CheckoutService) {
	selectionStore = st
	checkoutSvc = svc
}

// POST /api/selection
func OpenSelection(c *gin.Context) {
	sel := selectionStore.Open()
	c.JSON(http.StatusCreated, gin.H{"selection": sel})
}

// GET /api/selection/:id
func GetSelection(c *gin.Context) {
	sel, err := selectionStore.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

type toggleRequest struct {
	CabinID string `json:"cabinId"`
}

// POST /api/selection/:id/toggle
func ToggleSelection(c *gin.Context) {
	var req toggleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sel, err := selectionStore.ToggleCabin(c.Param("id"), req.CabinID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

type guestsRequest struct {
	Delta int `json:"delta"`
}

// POST /api/selection/:id/guests
func AdjustSelectionGuests(c *gin.Context) {
	var req guestsRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	sel, err := selectionStore.AdjustGuests(c.Param("id"), req.Delta)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

// POST /api/selection/:id/checkout
func StartCheckout(c *gin.Context) {
	sel, err := selectionStore.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := checkoutSvc
	svc.RequestID = middleware.GetRequestID(c)
	res, err := svc.StartCheckout(c.Request.Context(), sel)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": res.URL})
}

// DELETE /api/selection/:id
func CloseSelection(c *gin.Context) {
	selectionStore.Delete(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "selection closed"})
}
