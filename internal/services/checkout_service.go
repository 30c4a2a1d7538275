package services

import (
	"context"
	"fmt"

	"bluevoyager/internal/catalog"
	"bluevoyager/internal/checkout"
	"bluevoyager/internal/domain"
	"bluevoyager/internal/domain/models"
	"bluevoyager/internal/flow"
	"bluevoyager/internal/utils"
)

// CheckoutService builds the checkout payload from a cabin selection and
// asks the external service for a redirect URL.
type CheckoutService struct {
	Client    checkout.Client
	RequestID string
}

// StartCheckout requires a highlighted cabin. The returned URL is the
// only way forward; any failure from the client means no redirect.
func (s CheckoutService) StartCheckout(ctx context.Context, sel flow.Selection) (checkout.Result, error) {
	if sel.CabinID == "" {
		return checkout.Result{}, domain.ValidationError{Field: "cabin", Msg: "no cabin selected"}
	}
	cabin, err := catalog.CabinByID(sel.CabinID)
	if err != nil {
		return checkout.Result{}, err
	}

	payload := models.CheckoutPayload{
		ID:     cabin.ID,
		Name:   cabin.Name,
		Image:  cabin.Image,
		Guests: sel.Guests,
		Total:  cabin.BasePrice * int64(sel.Guests),
	}

	res, err := s.Client.CreateSession(ctx, payload)
	if err != nil {
		utils.LogEvent(s.RequestID, "checkout", "create_session", "failed: "+err.Error())
		return checkout.Result{}, err
	}
	utils.LogEvent(s.RequestID, "checkout", "create_session", fmt.Sprintf("cabin=%s guests=%d total=%s", payload.ID, payload.Guests, utils.FormatEUR(payload.Total)))
	return res, nil
}
