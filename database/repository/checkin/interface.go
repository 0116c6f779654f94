package checkinRepo

import (
	"context"
	"time"

	"suretydesk/database"
	"suretydesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CheckInRepository interface {
	Create(ctx context.Context, ci models.CheckIn) (string, error)
	GetByClientID(ctx context.Context, clientID string) ([]models.CheckIn, error)
	LastCheckIn(ctx context.Context, clientID string) (*models.CheckIn, error)
	ClientsCheckedInSince(ctx context.Context, since time.Time) ([]string, error)
}

type mongoCheckInRepo struct {
	coll *mongo.Collection
}

// NewMongoCheckInRepo returns a new CheckInRepository instance using MongoDB.
func NewMongoCheckInRepo() CheckInRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoCheckInRepo{
		coll: db.Collection("checkins"),
	}
}
