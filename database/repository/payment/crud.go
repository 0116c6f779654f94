package paymentRepo

import (
	"context"
	"errors"
	"time"

	"suretydesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new payment and returns its ID.
func (r *mongoPaymentRepo) Create(ctx context.Context, payment models.Payment) (string, error) {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	payment.CreatedAt = time.Now()
	payment.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		return "", err
	}
	return payment.ID, nil
}

// GetByID returns a payment by its ID.
func (r *mongoPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// GetByBondID fetches all payments recorded against a bond.
func (r *mongoPaymentRepo) GetByBondID(ctx context.Context, bondID string) ([]models.Payment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"bondId": bondID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// List returns all payments.
func (r *mongoPaymentRepo) List(ctx context.Context) ([]models.Payment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// UpdateStatus sets a payment's status (pending, paid).
func (r *mongoPaymentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	update := bson.M{"status": status, "updatedAt": time.Now()}
	if status == "paid" {
		update["paidAt"] = time.Now()
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("payment not found")
	}
	return nil
}
