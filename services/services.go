package services

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func validateService(s *models.Service) string {
	if s.Icon == "" || s.Title == "" || s.Description == "" {
		return "Icon, title and description are required"
	}
	for _, f := range s.Features {
		if f == "" {
			return "Features must be non-empty"
		}
	}
	return ""
}

func GetServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cur, err := db.ServicesCollection.Find(r.Context(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch services")
		return
	}
	defer cur.Close(r.Context())

	services := []models.Service{}
	if err := cur.All(r.Context(), &services); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch services")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, services)
}

func CreateService(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var service models.Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if msg := validateService(&service); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	service.ServiceID = "svc" + utils.GenerateRandomString(10)
	service.CreatedAt = time.Now()
	service.UpdatedAt = time.Now()

	if _, err := db.ServicesCollection.InsertOne(r.Context(), service); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create service")
		return
	}

	go mq.Emit(r.Context(), "service-created", models.Index{
		EntityType: "service", EntityId: service.ServiceID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, service)
}

func EditService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	serviceID := ps.ByName("id")

	var input map[string]any
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	for _, field := range []string{"icon", "title", "description", "features"} {
		if v, ok := input[field]; ok {
			set[field] = v
		}
	}

	var updated models.Service
	err := db.ServicesCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"serviceid": serviceID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Service not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update service")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	serviceID := ps.ByName("id")

	res, err := db.ServicesCollection.DeleteOne(r.Context(), bson.M{"serviceid": serviceID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Service not found")
		return
	}

	go mq.Emit(r.Context(), "service-deleted", models.Index{
		EntityType: "service", EntityId: serviceID, Method: "DELETE",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Service deleted successfully"})
}
