package categories

import (
	"encoding/json"
	"errors"
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

// Nested option operations. All mutations are single atomic updates on the
// parent document (positional array filters), never read-modify-write.

// OptionPatch carries the updatable fields of an option; pointers so a PUT
// merges only what the caller supplied.
type OptionPatch struct {
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	PerPerson *bool    `json:"perPerson"`
	Margin    *float64 `json:"margin"`
}

// BuildOptionSet converts a patch into the $set fields for an array-filter
// update. Returns an error on invariant violations.
func BuildOptionSet(patch OptionPatch) (bson.M, error) {
	set := bson.M{}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, errors.New("option name must not be empty")
		}
		set["options.$[opt].name"] = *patch.Name
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, errors.New("option price must not be negative")
		}
		set["options.$[opt].price"] = *patch.Price
	}
	if patch.PerPerson != nil {
		set["options.$[opt].perPerson"] = *patch.PerPerson
	}
	if patch.Margin != nil {
		if *patch.Margin < 0 {
			return nil, errors.New("option margin must not be negative")
		}
		set["options.$[opt].margin"] = *patch.Margin
	}
	if len(set) == 0 {
		return nil, errors.New("nothing to update")
	}
	return set, nil
}

func AddOption(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryId")

	var opt models.ServiceOption
	if err := json.NewDecoder(r.Body).Decode(&opt); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := ValidateOption(opt); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	opt.OptionID = uuid.NewString()

	var updated models.ServiceCategory
	err := db.ServiceCategoriesCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"categoryid": categoryID},
		bson.M{
			"$push": bson.M{"options": opt},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add service option")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, updated)
}

func UpdateOption(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryId")
	optionID := ps.ByName("optionId")

	var patch OptionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set, err := BuildOptionSet(patch)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	set["updatedAt"] = time.Now()

	var updated models.ServiceCategory
	err = db.ServiceCategoriesCollection.FindOneAndUpdate(
		r.Context(),
		bson.M{"categoryid": categoryID, "options.optionid": optionID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().
			SetReturnDocument(options.After).
			SetArrayFilters(options.ArrayFilters{
				Filters: []interface{}{bson.M{"opt.optionid": optionID}},
			}),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Service option not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update service option")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}

func RemoveOption(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	categoryID := ps.ByName("categoryId")
	optionID := ps.ByName("optionId")

	res, err := db.ServiceCategoriesCollection.UpdateOne(
		r.Context(),
		bson.M{"categoryid": categoryID, "options.optionid": optionID},
		bson.M{
			"$pull": bson.M{"options": bson.M{"optionid": optionID}},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete service option")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Service option not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Service option removed successfully"})
}
