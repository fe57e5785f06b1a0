package availability

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"eventcraft/db"
	"eventcraft/models"
	"eventcraft/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureSingleton creates the availability record under its fixed id if it
// does not exist yet. Called once at startup so handlers never race to
// create duplicates.
func EnsureSingleton(ctx context.Context) {
	_, err := db.AvailabilityCollection.UpdateOne(
		ctx,
		bson.M{"id": SingletonID},
		bson.M{"$setOnInsert": models.Availability{
			ID:             SingletonID,
			AvailableDates: []string{},
			BookedDates:    []string{},
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("Failed to ensure availability record: %v", err)
	}
}

func load(ctx context.Context) (*models.Availability, error) {
	var a models.Availability
	err := db.AvailabilityCollection.FindOne(ctx, bson.M{"id": SingletonID}).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func save(ctx context.Context, a *models.Availability) error {
	a.UpdatedAt = time.Now()
	_, err := db.AvailabilityCollection.ReplaceOne(ctx, bson.M{"id": SingletonID}, a)
	return err
}

func GetAvailability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	a, err := load(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a)
}

type bulkInput struct {
	AvailableDates *[]string `json:"availableDates"`
	BookedDates    *[]string `json:"bookedDates"`
	Notes          *string   `json:"notes"`
}

func normalizeAll(dates []string) ([]string, error) {
	out := make([]string, 0, len(dates))
	for _, raw := range dates {
		d, err := utils.NormalizeDate(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func applyBulk(w http.ResponseWriter, r *http.Request, status int) {
	var input bulkInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	a, err := load(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}

	if input.AvailableDates != nil {
		if a.AvailableDates, err = normalizeAll(*input.AvailableDates); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if input.BookedDates != nil {
		if a.BookedDates, err = normalizeAll(*input.BookedDates); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if input.Notes != nil {
		a.Notes = *input.Notes
	}

	if err := ValidateDisjoint(a.AvailableDates, a.BookedDates); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := save(r.Context(), a); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update availability")
		return
	}
	utils.RespondWithJSON(w, status, a)
}

func SetAvailability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	applyBulk(w, r, http.StatusCreated)
}

func UpdateAvailability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	applyBulk(w, r, http.StatusOK)
}

func dateFromBody(r *http.Request) (string, error) {
	var input struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return "", errors.New("Invalid input")
	}
	return utils.NormalizeDate(input.Date)
}

func AddAvailableDate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	date, err := dateFromBody(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := load(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}

	if err := MarkAvailable(a, date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := save(r.Context(), a); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add available date")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, a)
}

func AddBookedDate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	date, err := dateFromBody(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := load(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}

	if err := MarkBooked(a, date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := save(r.Context(), a); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add booked date")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, a)
}

func RemoveAvailableDate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date, err := utils.NormalizeDate(ps.ByName("date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := load(r.Context())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Availability not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}

	UnmarkAvailable(a, date)
	if err := save(r.Context(), a); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove available date")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a)
}

func RemoveBookedDate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date, err := utils.NormalizeDate(ps.ByName("date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := load(r.Context())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.RespondWithError(w, http.StatusNotFound, "Availability not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch availability")
		return
	}

	UnmarkBooked(a, date)
	if err := save(r.Context(), a); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to remove booked date")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, a)
}

func CheckDateHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	date, err := utils.NormalizeDate(ps.ByName("date"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := load(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check date availability")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, CheckDate(a, date))
}
