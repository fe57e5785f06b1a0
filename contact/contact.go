package contact

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

// SubmitContact is the public contact form endpoint.
func SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var submission models.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if submission.Name == "" || submission.Email == "" || submission.Message == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, email and message are required")
		return
	}

	submission.ContactID = "c" + utils.GenerateRandomDigitString(12)
	submission.SubmittedAt = time.Now()

	if _, err := db.ContactsCollection.InsertOne(r.Context(), submission); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{
			"success": false, "message": "Failed to save contact",
		})
		return
	}

	go mq.Emit(r.Context(), "contact-submitted", models.Index{
		EntityType: "contact", EntityId: submission.ContactID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true, "message": "Contact saved successfully",
	})
}

// GetContacts lists submissions, newest first. Admin only.
func GetContacts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().SetSort(bson.M{"submittedAt": -1})
	cur, err := db.ContactsCollection.Find(r.Context(), bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}
	defer cur.Close(r.Context())

	contacts := []models.ContactSubmission{}
	if err := cur.All(r.Context(), &contacts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch contacts")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, contacts)
}

// DeleteContact removes a submission. Admin only.
func DeleteContact(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	contactID := ps.ByName("id")

	res, err := db.ContactsCollection.DeleteOne(r.Context(), bson.M{"contactid": contactID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Contact not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Contact deleted successfully"})
}
