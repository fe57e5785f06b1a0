package bookings

import (
	"encoding/json"
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

// GetPackageBookings lists every package booking, newest first. Admin only.
func GetPackageBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	cur, err := db.PackageBookingsCollection.Find(r.Context(), bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	defer cur.Close(r.Context())

	bookings := []models.PackageBooking{}
	if err := cur.All(r.Context(), &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// GetMyPackageBookings returns only the caller's bookings.
func GetMyPackageBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	cur, err := db.PackageBookingsCollection.Find(r.Context(), bson.M{"userId": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch user bookings")
		return
	}
	defer cur.Close(r.Context())

	bookings := []models.PackageBooking{}
	if err := cur.All(r.Context(), &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch user bookings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

func CreatePackageBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking models.PackageBooking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if booking.Name == "" || booking.Email == "" || booking.PackageName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email and package name are required")
		return
	}
	if booking.EventDate != "" {
		normalized, err := utils.NormalizeDate(booking.EventDate)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		booking.EventDate = normalized
	}

	// Identity comes from the token, never the body.
	booking.UserID = utils.GetUserIDFromRequest(r)
	booking.BookingID = "pb" + utils.GenerateRandomDigitString(14)
	booking.Status = models.BookingPending
	booking.AdminNotes = ""
	booking.SubmittedAt = time.Now()

	if _, err := db.PackageBookingsCollection.InsertOne(r.Context(), booking); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"success": false, "message": "Failed to save booking",
		})
		return
	}

	go mq.Emit(r.Context(), "package-booking-created", models.Index{
		EntityType: "packagebooking", EntityId: booking.BookingID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true, "message": "Package booking saved successfully",
	})
}

// UpdatePackageBooking sets status and admin notes. Admin only; status
// transitions are constrained (nothing returns to pending).
func UpdatePackageBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	input, err := decodeStatusUpdate(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	var current models.PackageBooking
	if err := db.PackageBookingsCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&current); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Booking not found")
		return
	}

	if !models.ValidStatusTransition(current.Status, input.Status) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status transition")
		return
	}

	var updated models.PackageBooking
	err = db.PackageBookingsCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"bookingid": bookingID},
		bson.M{"$set": bson.M{"status": input.Status, "adminNotes": input.AdminNotes}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	go mq.Emit(r.Context(), "package-booking-updated", models.Index{
		EntityType: "packagebooking", EntityId: bookingID, Method: "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeletePackageBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	bookingID := ps.ByName("id")

	res, err := db.PackageBookingsCollection.DeleteOne(r.Context(), bson.M{"bookingid": bookingID})
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
