package checkinRepo

import (
	"context"
	"time"

	"suretydesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a check-in record and returns its ID.
func (r *mongoCheckInRepo) Create(ctx context.Context, ci models.CheckIn) (string, error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	if ci.CheckedAt.IsZero() {
		ci.CheckedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, ci)
	if err != nil {
		return "", err
	}
	return ci.ID, nil
}

// GetByClientID returns a client's check-in history, newest first.
func (r *mongoCheckInRepo) GetByClientID(ctx context.Context, clientID string) ([]models.CheckIn, error) {
	opts := options.Find().SetSort(bson.D{{Key: "checkedAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var checkins []models.CheckIn
	if err := cursor.All(ctx, &checkins); err != nil {
		return nil, err
	}
	return checkins, nil
}

// LastCheckIn returns the most recent check-in for a client, or nil if none exists.
func (r *mongoCheckInRepo) LastCheckIn(ctx context.Context, clientID string) (*models.CheckIn, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "checkedAt", Value: -1}})
	var ci models.CheckIn
	err := r.coll.FindOne(ctx, bson.M{"clientId": clientID}, opts).Decode(&ci)
	if err != nil {
		return nil, err
	}
	return &ci, nil
}

// ClientsCheckedInSince returns the distinct client IDs with a check-in after the given time.
func (r *mongoCheckInRepo) ClientsCheckedInSince(ctx context.Context, since time.Time) ([]string, error) {
	raw, err := r.coll.Distinct(ctx, "clientId", bson.M{"checkedAt": bson.M{"$gte": since}})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
