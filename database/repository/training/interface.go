package trainingRepo

import (
	"context"

	"suretydesk/database"
	"suretydesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TrainingRepository interface {
	CreateModule(ctx context.Context, mod models.TrainingModule) (string, error)
	GetModule(ctx context.Context, id string) (*models.TrainingModule, error)
	ListModules(ctx context.Context) ([]models.TrainingModule, error)
	DeleteModule(ctx context.Context, id string) error

	RecordProgress(ctx context.Context, progress models.TrainingProgress) (string, error)
	ProgressForStaff(ctx context.Context, staffID string) ([]models.TrainingProgress, error)
}

type mongoTrainingRepo struct {
	modules  *mongo.Collection
	progress *mongo.Collection
}

// NewMongoTrainingRepo returns a new TrainingRepository instance using MongoDB.
func NewMongoTrainingRepo() TrainingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoTrainingRepo{
		modules:  db.Collection("training_modules"),
		progress: db.Collection("training_progress"),
	}
}
