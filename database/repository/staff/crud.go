package staffRepo

import (
	"context"
	"time"

	"suretydesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a staff record and returns its ID.
func (r *mongoStaffRepo) Create(ctx context.Context, staff models.Staff) (string, error) {
	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, staff)
	if err != nil {
		return "", err
	}
	return staff.ID, nil
}

// GetByID returns a staff member by ID.
func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff)
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetByEmail returns a staff member by email.
func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var staff models.Staff
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff)
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// List returns all staff members.
func (r *mongoStaffRepo) List(ctx context.Context) ([]models.Staff, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var staff []models.Staff
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}
