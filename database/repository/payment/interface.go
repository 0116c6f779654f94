package paymentRepo

import (
	"context"

	"suretydesk/database"
	"suretydesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment models.Payment) (string, error)
	GetByID(ctx context.Context, id string) (*models.Payment, error)
	GetByBondID(ctx context.Context, bondID string) ([]models.Payment, error)
	List(ctx context.Context) ([]models.Payment, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo returns a new PaymentRepository instance using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoPaymentRepo{
		coll: db.Collection("payments"),
	}
}
