package bondRepo

import (
	"context"
	"errors"
	"time"

	"suretydesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new bond and returns its ID.
func (r *mongoBondRepo) Create(ctx context.Context, bond models.Bond) (string, error) {
	if bond.ID == "" {
		bond.ID = uuid.New().String()
	}
	if bond.Status == "" {
		bond.Status = models.BondStatusActive
	}
	if bond.IssuedDate.IsZero() {
		bond.IssuedDate = time.Now()
	}
	bond.CreatedAt = time.Now()
	bond.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, bond)
	if err != nil {
		return "", err
	}
	return bond.ID, nil
}

// GetByID returns a bond by its ID.
func (r *mongoBondRepo) GetByID(ctx context.Context, id string) (*models.Bond, error) {
	var bond models.Bond
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&bond)
	if err != nil {
		return nil, err
	}
	return &bond, nil
}

// GetByClientID fetches all bonds written for a client.
func (r *mongoBondRepo) GetByClientID(ctx context.Context, clientID string) ([]models.Bond, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bonds []models.Bond
	if err := cursor.All(ctx, &bonds); err != nil {
		return nil, err
	}
	return bonds, nil
}

// List returns all bonds.
func (r *mongoBondRepo) List(ctx context.Context) ([]models.Bond, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bonds []models.Bond
	if err := cursor.All(ctx, &bonds); err != nil {
		return nil, err
	}
	return bonds, nil
}

// Update replaces a bond by ID.
func (r *mongoBondRepo) Update(ctx context.Context, bond models.Bond) error {
	bond.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": bond.ID}, bond)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("bond not found")
	}
	return nil
}

// UpdateStatus sets a bond's status (active, exonerated, forfeited).
func (r *mongoBondRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("bond not found")
	}
	return nil
}
