package deals

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"eventcraft/db"
	"eventcraft/models"
	"eventcraft/mq"
	"eventcraft/rdx"
	"eventcraft/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activeDealsCacheKey = "deals:active"
const activeDealsCacheTTL = 5 * time.Minute

func invalidateCache() {
	if err := rdx.RdxDel(activeDealsCacheKey); err != nil {
		log.Printf("Failed to invalidate deals cache: %v", err)
	}
}

// GetDeals returns active deals, newest first. The list is cached in Redis
// and the cache is dropped by every write.
func GetDeals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if cached, err := rdx.RdxGet(activeDealsCacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cur, err := db.DealsCollection.Find(r.Context(), bson.M{"isActive": true}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deals")
		return
	}
	defer cur.Close(r.Context())

	deals := []models.Deal{}
	if err := cur.All(r.Context(), &deals); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deals")
		return
	}

	if data, err := json.Marshal(deals); err == nil {
		if err := rdx.SetWithExpiry(activeDealsCacheKey, string(data), activeDealsCacheTTL); err != nil {
			log.Printf("Failed to cache deals: %v", err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, deals)
}

// GetDeal looks a deal up by id, soft-deleted ones included.
func GetDeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dealID := ps.ByName("id")

	var deal models.Deal
	err := db.DealsCollection.FindOne(r.Context(), bson.M{"dealid": dealID}).Decode(&deal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Deal not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deal")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, deal)
}

func CreateDeal(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var deal models.Deal
	if err := json.NewDecoder(r.Body).Decode(&deal); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if deal.Name == "" || deal.Services == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, price, and services array are required")
		return
	}
	if deal.Price < 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Price must not be negative")
		return
	}

	deal.DealID = "deal" + utils.GenerateRandomString(10)
	deal.IsActive = true
	deal.CreatedAt = time.Now()
	deal.UpdatedAt = time.Now()

	if _, err := db.DealsCollection.InsertOne(r.Context(), deal); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create deal")
		return
	}

	invalidateCache()
	go mq.Emit(r.Context(), "deal-created", models.Index{
		EntityType: "deal", EntityId: deal.DealID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, deal)
}

func EditDeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dealID := ps.ByName("id")

	var input struct {
		Name        *string   `json:"name"`
		Price       *float64  `json:"price"`
		Services    *[]string `json:"services"`
		Description *string   `json:"description"`
		IsActive    *bool     `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Price must not be negative")
			return
		}
		set["price"] = *input.Price
	}
	if input.Services != nil {
		set["services"] = *input.Services
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.IsActive != nil {
		set["isActive"] = *input.IsActive
	}

	var updated models.Deal
	err := db.DealsCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"dealid": dealID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Deal not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update deal")
		return
	}

	invalidateCache()
	go mq.Emit(r.Context(), "deal-updated", models.Index{
		EntityType: "deal", EntityId: dealID, Method: "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DeleteDeal soft-deletes: the document stays, isActive flips to false.
func DeleteDeal(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dealID := ps.ByName("id")

	res, err := db.DealsCollection.UpdateOne(
		r.Context(),
		bson.M{"dealid": dealID},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete deal")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Deal not found")
		return
	}

	invalidateCache()
	go mq.Emit(r.Context(), "deal-deleted", models.Index{
		EntityType: "deal", EntityId: dealID, Method: "DELETE",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Deal deleted successfully"})
}

// PatchDealServices replaces the services list of a deal.
func PatchDealServices(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dealID := ps.ByName("id")

	var input struct {
		Services []string `json:"services"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Services == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Services array is required")
		return
	}

	var updated models.Deal
	err := db.DealsCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"dealid": dealID},
		bson.M{"$set": bson.M{"services": input.Services, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Deal not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update deal services")
		return
	}

	invalidateCache()
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
