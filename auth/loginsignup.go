package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"eventcraft/db"
	"eventcraft/middleware"
	"eventcraft/models"
	"eventcraft/rdx"
	"eventcraft/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

func signupHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Name == "" || input.Email == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and email are required")
		return
	}

	if !ValidPassword(input.Password) {
		utils.RespondWithError(w, http.StatusBadRequest,
			"Password must be at least 6 characters long and include at least one letter.")
		return
	}

	// Check if the email is already registered
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": input.Email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Email already in use")
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not process password")
		return
	}

	user := models.User{
		UserID:    "u" + utils.GenerateRandomString(10),
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hashedPassword),
		Role:      "user",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := db.UserCollection.InsertOne(r.Context(), user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	if err := rdx.RdxSet(fmt.Sprintf("users:%s", user.UserID), user.Email); err != nil {
		log.Printf("Redis cache failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "User registered successfully"})
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if len(input.Password) < 6 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
			"success": false, "message": "Invalid password format.",
		})
		return
	}

	var storedUser models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": input.Email}).Decode(&storedUser)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{
			"success": false, "message": "User does not exist",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedUser.Password), []byte(input.Password)); err != nil {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{
			"success": false, "message": "Incorrect email or password",
		})
		return
	}

	tokenString, err := middleware.GenerateToken(storedUser.UserID, storedUser.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"token":   tokenString,
		"role":    storedUser.Role,
	})
}
