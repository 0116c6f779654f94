package documentRepo

import (
	"context"
	"errors"
	"time"

	"suretydesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts document metadata and returns its ID.
func (r *mongoDocumentRepo) Create(ctx context.Context, doc models.Document) (string, error) {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return doc.ID, nil
}

// GetByID returns document metadata by ID.
func (r *mongoDocumentRepo) GetByID(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetByClientID fetches all documents filed for a client.
func (r *mongoDocumentRepo) GetByClientID(ctx context.Context, clientID string) ([]models.Document, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// List returns all document metadata.
func (r *mongoDocumentRepo) List(ctx context.Context) ([]models.Document, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// DeleteByID removes document metadata by ID.
func (r *mongoDocumentRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("document not found")
	}
	return nil
}
