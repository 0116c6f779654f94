package recordsRepo

import (
	"context"

	"suretydesk/database"
	"suretydesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SnapshotRepository loads the five searchable record sets. It returns the
// arrays as stored, with no filtering; narrowing is the search pipeline's job.
type SnapshotRepository interface {
	Snapshot(ctx context.Context) (models.RecordSnapshot, error)
}

type mongoSnapshotRepo struct {
	clients   *mongo.Collection
	cases     *mongo.Collection
	bonds     *mongo.Collection
	payments  *mongo.Collection
	documents *mongo.Collection
}

// NewMongoSnapshotRepo returns a new SnapshotRepository instance using MongoDB.
func NewMongoSnapshotRepo() SnapshotRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoSnapshotRepo{
		clients:   db.Collection("clients"),
		cases:     db.Collection("cases"),
		bonds:     db.Collection("bonds"),
		payments:  db.Collection("payments"),
		documents: db.Collection("documents"),
	}
}
