package services

import (
	"context"
	"errors"
	"testing"

	"bluevoyager/internal/checkout"
	"bluevoyager/internal/domain"
	"bluevoyager/internal/domain/models"
	"bluevoyager/internal/flow"
)

var errDBDown = errors.New("db down")

type fakeCheckoutClient struct {
	payload models.CheckoutPayload
	result  checkout.Result
	err     error
}

func (f *fakeCheckoutClient) CreateSession(_ context.Context, p models.CheckoutPayload) (checkout.Result, error) {
	f.payload = p
	return f.result, f.err
}

func TestStartCheckoutBuildsPayload(t *testing.T) {
	client := &fakeCheckoutClient{result: checkout.Result{URL: "https://pay.example.com/cs_1"}}
	svc := CheckoutService{Client: client}

	sel := flow.Selection{ID: "sel-1", CabinID: "standard", Guests: 3}
	res, err := svc.StartCheckout(context.Background(), sel)
	if err != nil {
		t.Fatalf("start checkout: %v", err)
	}
	if res.URL != "https://pay.example.com/cs_1" {
		t.Fatalf("url = %q", res.URL)
	}

	p := client.payload
	if p.ID != "standard" || p.Name != "Ocean View Cabin" || p.Image != "/cabin1.png" {
		t.Fatalf("payload identity: %+v", p)
	}
	if p.Guests != 3 || p.Total != 6597 {
		t.Fatalf("payload pricing: guests=%d total=%d", p.Guests, p.Total)
	}
}

func TestStartCheckoutWithoutCabin(t *testing.T) {
	svc := CheckoutService{Client: &fakeCheckoutClient{}}

	_, err := svc.StartCheckout(context.Background(), flow.Selection{ID: "sel-1", Guests: 2})
	if !domain.IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestStartCheckoutServiceDown(t *testing.T) {
	client := &fakeCheckoutClient{err: domain.UnavailableError{Service: "checkout", Msg: "down"}}
	svc := CheckoutService{Client: client}

	sel := flow.Selection{ID: "sel-1", CabinID: "deluxe", Guests: 2}
	if _, err := svc.StartCheckout(context.Background(), sel); !domain.IsUnavailable(err) {
		t.Fatalf("err = %v, want unavailable", err)
	}
}
