package admin

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"eventcraft/db"
	"eventcraft/models"
	"eventcraft/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin creates the bootstrap admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD at startup. Skipped silently when the env vars are unset;
// a no-op when the account already exists.
func EnsureAdmin(ctx context.Context) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping admin bootstrap")
		return
	}

	err := db.UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("Admin bootstrap lookup failed: %v", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Admin bootstrap hash failed: %v", err)
		return
	}

	adminUser := models.User{
		UserID:    "u" + utils.GenerateRandomString(10),
		Name:      "Admin User",
		Email:     email,
		Password:  string(hashed),
		Role:      "admin",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if _, err := db.UserCollection.InsertOne(ctx, adminUser); err != nil {
		log.Printf("Admin bootstrap insert failed: %v", err)
		return
	}
	log.Println("Admin created successfully")
}
