package clientRepo

import (
	"context"
	"errors"
	"time"

	"suretydesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new client record and returns its ID.
func (r *mongoClientRepo) Create(ctx context.Context, client models.Client) (string, error) {
	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, client)
	if err != nil {
		return "", err
	}
	return client.ID, nil
}

// GetByID returns a client by its ID.
func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	var client models.Client
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// List returns all clients on file.
func (r *mongoClientRepo) List(ctx context.Context) ([]models.Client, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clients []models.Client
	if err := cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// Update replaces a client record by ID.
func (r *mongoClientRepo) Update(ctx context.Context, client models.Client) error {
	client.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": client.ID}, client)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("client not found")
	}
	return nil
}

// DeleteByID removes a client record by ID.
func (r *mongoClientRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("client not found")
	}
	return nil
}

// AppendNotice pushes a portal notice onto the client's notice list.
func (r *mongoClientRepo) AppendNotice(ctx context.Context, clientID string, notice models.PortalNotice) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": clientID},
		bson.M{
			"$push": bson.M{"notices": notice},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("client not found")
	}
	return nil
}
