package caseRepo

import (
	"context"
	"errors"
	"time"

	"suretydesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new case file and returns its ID.
func (r *mongoCaseRepo) Create(ctx context.Context, cf models.CaseFile) (string, error) {
	if cf.ID == "" {
		cf.ID = uuid.New().String()
	}
	if cf.Status == "" {
		cf.Status = models.CaseStatusOpen
	}
	cf.CreatedAt = time.Now()
	cf.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, cf)
	if err != nil {
		return "", err
	}
	return cf.ID, nil
}

// GetByID returns a case file by its ID.
func (r *mongoCaseRepo) GetByID(ctx context.Context, id string) (*models.CaseFile, error) {
	var cf models.CaseFile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&cf)
	if err != nil {
		return nil, err
	}
	return &cf, nil
}

// GetByClientID fetches all case files for a client.
func (r *mongoCaseRepo) GetByClientID(ctx context.Context, clientID string) ([]models.CaseFile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cases []models.CaseFile
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// List returns all case files.
func (r *mongoCaseRepo) List(ctx context.Context) ([]models.CaseFile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cases []models.CaseFile
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// Update replaces a case file by ID.
func (r *mongoCaseRepo) Update(ctx context.Context, cf models.CaseFile) error {
	cf.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": cf.ID}, cf)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("case not found")
	}
	return nil
}

// DeleteByID removes a case file by ID.
func (r *mongoCaseRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("case not found")
	}
	return nil
}

// UpcomingCourtDates returns open cases whose court date falls within the window.
func (r *mongoCaseRepo) UpcomingCourtDates(ctx context.Context, within time.Duration) ([]models.CaseFile, error) {
	now := time.Now()
	filter := bson.M{
		"status": bson.M{"$in": []string{models.CaseStatusOpen, models.CaseStatusPending}},
		"courtDate": bson.M{
			"$gte": now,
			"$lte": now.Add(within),
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cases []models.CaseFile
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
