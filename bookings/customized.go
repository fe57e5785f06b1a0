package bookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"eventcraft/db"
	"eventcraft/models"
	"eventcraft/mq"
	"eventcraft/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type statusUpdate struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

func decodeStatusUpdate(r *http.Request) (statusUpdate, error) {
	var input statusUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return input, errors.New("Invalid input")
	}
	switch input.Status {
	case models.BookingPending, models.BookingApproved, models.BookingRejected:
		return input, nil
	}
	return input, errors.New("Unknown booking status")
}

func GetCustomizedBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	cur, err := db.CustomizedBookingsCollection.Find(r.Context(), bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	defer cur.Close(r.Context())

	bookings := []models.CustomizedBooking{}
	if err := cur.All(r.Context(), &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

func GetMyCustomizedBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	cur, err := db.CustomizedBookingsCollection.Find(r.Context(), bson.M{"userId": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch user bookings")
		return
	}
	defer cur.Close(r.Context())

	bookings := []models.CustomizedBooking{}
	if err := cur.All(r.Context(), &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch user bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// CreateCustomizedBooking freezes the submitted selection snapshots, budget
// and negotiation flag into the record. Nothing is re-derived from the live
// catalog afterwards.
func CreateCustomizedBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking models.CustomizedBooking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if booking.Name == "" || booking.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and email are required")
		return
	}
	if booking.SelectedServices == nil {
		booking.SelectedServices = map[string][]models.SelectedOption{}
	}
	for _, opts := range booking.SelectedServices {
		for _, opt := range opts {
			if opt.Name == "" || opt.Price < 0 || opt.Margin < 0 {
				utils.RespondWithError(w, http.StatusBadRequest, "Invalid selected service snapshot")
				return
			}
		}
	}
	if booking.EventDate != "" {
		normalized, err := utils.NormalizeDate(booking.EventDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		booking.EventDate = normalized
	}

	booking.UserID = utils.GetUserIDFromRequest(r)
	booking.BookingID = "cb" + utils.GenerateRandomDigitString(14)
	booking.Status = models.BookingPending
	booking.AdminNotes = ""
	booking.SubmittedAt = time.Now()

	if _, err := db.CustomizedBookingsCollection.InsertOne(r.Context(), booking); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"success": false, "message": "Failed to save booking",
		})
		return
	}

	go mq.Emit(r.Context(), "customized-booking-created", models.Index{
		EntityType: "customizedbooking", EntityId: booking.BookingID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true, "message": "Booking saved successfully",
	})
}

func UpdateCustomizedBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	input, err := decodeStatusUpdate(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var current models.CustomizedBooking
	if err := db.CustomizedBookingsCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&current); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if !models.ValidStatusTransition(current.Status, input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status transition")
		return
	}

	var updated models.CustomizedBooking
	err = db.CustomizedBookingsCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"bookingid": bookingID},
		bson.M{"$set": bson.M{"status": input.Status, "adminNotes": input.AdminNotes}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	go mq.Emit(r.Context(), "customized-booking-updated", models.Index{
		EntityType: "customizedbooking", EntityId: bookingID, Method: "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteCustomizedBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	res, err := db.CustomizedBookingsCollection.DeleteOne(r.Context(), bson.M{"bookingid": bookingID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete booking")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{
			"success": false, "message": "Booking not found",
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true, "message": "Booking deleted successfully",
	})
}
