package db

import (
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	UserCollection               *mongo.Collection
	ServicesCollection           *mongo.Collection
	ServiceCategoriesCollection  *mongo.Collection
	DealsCollection              *mongo.Collection
	AvailabilityCollection       *mongo.Collection
	ContactsCollection           *mongo.Collection
	PackageBookingsCollection    *mongo.Collection
	CustomizedBookingsCollection *mongo.Collection
	Client                       *mongo.Client
)

// Connect initializes the MongoDB connection and the per-entity collection
// handles. MONGO_URI must be set; the process is useless without a store.
func Connect(ctx context.Context) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		log.Fatal("MONGO_URI must be set")
	}

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err = Client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("MongoDB unreachable: %v", err)
	}

	database := Client.Database("eventcraft")
	UserCollection = database.Collection("users")
	ServicesCollection = database.Collection("services")
	ServiceCategoriesCollection = database.Collection("servicecategories")
	DealsCollection = database.Collection("deals")
	AvailabilityCollection = database.Collection("availability")
	ContactsCollection = database.Collection("contacts")
	PackageBookingsCollection = database.Collection("packagebookings")
	CustomizedBookingsCollection = database.Collection("customizedbookings")
}
