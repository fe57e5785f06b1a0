package pricing

import (
	"errors"

	"eventcraft/models"
)

var (
	ErrFixedPricing      = errors.New("the selected services have fixed pricing and cannot be negotiated")
	ErrAlreadyNegotiated = errors.New("you have already used your one-time negotiation discount for this event")
)

// Total sums the selected option prices. Per-person options are multiplied
// by the guest count.
func Total(selection map[string][]models.SelectedOption, guestCount int) float64 {
	var total float64
	for _, opts := range selection {
		for _, opt := range opts {
			if opt.PerPerson {
				total += opt.Price * float64(guestCount)
			} else {
				total += opt.Price
			}
		}
	}
	return total
}

// Negotiate computes the one-time discount: the sum of margins on selected
// options with margin > 0, per-person margins multiplied by guest count.
// Fails when no selected option is negotiable or when the discount was
// already taken for this in-progress customization.
func Negotiate(selection map[string][]models.SelectedOption, guestCount int, hasNegotiated bool) (float64, error) {
	if hasNegotiated {
		return 0, ErrAlreadyNegotiated
	}

	var discount float64
	for _, opts := range selection {
		for _, opt := range opts {
			if opt.Margin > 0 {
				if opt.PerPerson {
					discount += opt.Margin * float64(guestCount)
				} else {
					discount += opt.Margin
				}
			}
		}
	}

	if discount == 0 {
		return 0, ErrFixedPricing
	}
	return discount, nil
}
