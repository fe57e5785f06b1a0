package categories

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"eventcraft/db"
	"eventcraft/models"
	"eventcraft/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ValidateOption checks the invariants of a priced option.
func ValidateOption(opt models.ServiceOption) error {
	if opt.Name == "" {
		return fmt.Errorf("option name is required")
	}
	if opt.Price < 0 {
		return fmt.Errorf("option price must not be negative")
	}
	if opt.Margin < 0 {
		return fmt.Errorf("option margin must not be negative")
	}
	return nil
}

func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cur, err := db.ServiceCategoriesCollection.Find(r.Context(), bson.M{})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	defer cur.Close(r.Context())

	categories := []models.ServiceCategory{}
	if err := cur.All(r.Context(), &categories); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, categories)
}

func CreateCategory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var category models.ServiceCategory
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if category.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Category name is required")
		return
	}
	if category.Options == nil {
		category.Options = []models.ServiceOption{}
	}
	for i := range category.Options {
		if err := ValidateOption(category.Options[i]); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		category.Options[i].OptionID = uuid.NewString()
	}

	category.CategoryID = "cat" + utils.GenerateRandomString(10)
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	if _, err := db.ServiceCategoriesCollection.InsertOne(r.Context(), category); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, category)
}

func EditCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryId")

	var input struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Category name is required")
		return
	}

	var updated models.ServiceCategory
	err := db.ServiceCategoriesCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"categoryid": categoryID},
		bson.M{"$set": bson.M{"name": input.Name, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func DeleteCategory(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryId")

	res, err := db.ServiceCategoriesCollection.DeleteOne(r.Context(), bson.M{"categoryid": categoryID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Category not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Category deleted successfully"})
}
