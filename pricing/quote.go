package pricing

import (
	"encoding/json"
	"net/http"

	"eventcraft/models"
	"eventcraft/utils"

	"github.com/julienschmidt/httprouter"
)

// QuoteHandler gives the SPA an authoritative price for the current
// selection. It is stateless: the client carries its own negotiation flag,
// which freezes into the booking only at submission time.
func QuoteHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		SelectedServices map[string][]models.SelectedOption `json:"selectedServices"`
		GuestCount       int                                `json:"guestCount"`
		Negotiate        bool                               `json:"negotiate"`
		HasNegotiated    bool                               `json:"hasNegotiated"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.GuestCount < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Guest count must be at least 1")
		return
	}

	total := Total(input.SelectedServices, input.GuestCount)
	resp := utils.M{
		"total":         total,
		"budget":        total,
		"hasNegotiated": input.HasNegotiated,
	}

	if input.Negotiate {
		discount, err := Negotiate(input.SelectedServices, input.GuestCount, input.HasNegotiated)
		if err != nil {
			utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": err.Error()})
			return
		}
		resp["discount"] = discount
		resp["budget"] = total - discount
		resp["hasNegotiated"] = true
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}
