package categories

import (
	"testing"

	"eventcraft/models"
)

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }
func boolp(b bool) *bool      { return &b }

func TestBuildOptionSet(t *testing.T) {
	set, err := BuildOptionSet(OptionPatch{
		Name:      strp("Premium Buffet"),
		Price:     f64p(75),
		PerPerson: boolp(true),
		Margin:    f64p(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(set))
	}
	if set["options.$[opt].name"] != "Premium Buffet" {
		t.Errorf("name field = %v", set["options.$[opt].name"])
	}
	if set["options.$[opt].price"] != 75.0 {
		t.Errorf("price field = %v", set["options.$[opt].price"])
	}
}

func TestBuildOptionSetPartial(t *testing.T) {
	set, err := BuildOptionSet(OptionPatch{Price: f64p(120)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 1 {
		t.Fatalf("expected only the price field, got %v", set)
	}
}

func TestBuildOptionSetRejectsInvalid(t *testing.T) {
	cases := []OptionPatch{
		{},                   // nothing to update
		{Name: strp("")},     // empty name
		{Price: f64p(-1)},    // negative price
		{Margin: f64p(-0.5)}, // negative margin
	}
	for i, patch := range cases {
		if _, err := BuildOptionSet(patch); err == nil {
			t.Errorf("case %d: expected error, got none", i)
		}
	}
}

func TestValidateOption(t *testing.T) {
	valid := models.ServiceOption{Name: "DJ", Price: 300, Margin: 50}
	if err := ValidateOption(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	invalid := []models.ServiceOption{
		{Name: "", Price: 300},
		{Name: "DJ", Price: -10},
		{Name: "DJ", Price: 300, Margin: -5},
	}
	for i, opt := range invalid {
		if err := ValidateOption(opt); err == nil {
			t.Errorf("case %d: expected error, got none", i)
		}
	}
}
