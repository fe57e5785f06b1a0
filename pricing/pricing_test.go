package pricing

import (
	"errors"
	"testing"

	"eventcraft/models"
)

func sampleSelection() map[string][]models.SelectedOption {
	return map[string][]models.SelectedOption{
		"venues": {
			{Name: "Grand Hall", Price: 1000, PerPerson: false, Margin: 200},
		},
		"catering": {
			{Name: "Buffet", Price: 50, PerPerson: true, Margin: 0},
		},
	}
}

func TestTotal(t *testing.T) {
	got := Total(sampleSelection(), 10)
	if got != 1500 {
		t.Fatalf("expected total 1500, got %v", got)
	}
}

func TestTotalEmptySelection(t *testing.T) {
	if got := Total(nil, 10); got != 0 {
		t.Fatalf("expected 0 for empty selection, got %v", got)
	}
}

func TestNegotiate(t *testing.T) {
	sel := sampleSelection()

	discount, err := Negotiate(sel, 10, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// only Grand Hall has margin > 0, and it is not per-person
	if discount != 200 {
		t.Fatalf("expected discount 200, got %v", discount)
	}
	if Total(sel, 10)-discount != 1300 {
		t.Fatalf("expected negotiated budget 1300, got %v", Total(sel, 10)-discount)
	}
}

func TestNegotiatePerPersonMargin(t *testing.T) {
	sel := map[string][]models.SelectedOption{
		"catering": {
			{Name: "Buffet", Price: 50, PerPerson: true, Margin: 5},
		},
	}
	discount, err := Negotiate(sel, 10, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if discount != 50 {
		t.Fatalf("expected discount 50, got %v", discount)
	}
}

func TestNegotiateOnlyOnce(t *testing.T) {
	_, err := Negotiate(sampleSelection(), 10, true)
	if !errors.Is(err, ErrAlreadyNegotiated) {
		t.Fatalf("expected ErrAlreadyNegotiated, got %v", err)
	}
}

func TestNegotiateFixedPricing(t *testing.T) {
	sel := map[string][]models.SelectedOption{
		"catering": {
			{Name: "Buffet", Price: 50, PerPerson: true, Margin: 0},
		},
	}
	_, err := Negotiate(sel, 10, false)
	if !errors.Is(err, ErrFixedPricing) {
		t.Fatalf("expected ErrFixedPricing, got %v", err)
	}
}
