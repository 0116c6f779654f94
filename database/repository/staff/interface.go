package staffRepo

import (
	"context"

	"suretydesk/database"
	"suretydesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type StaffRepository interface {
	Create(ctx context.Context, staff models.Staff) (string, error)
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	List(ctx context.Context) ([]models.Staff, error)
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo returns a new StaffRepository instance using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoStaffRepo{
		coll: db.Collection("staff"),
	}
}
