package recordsRepo

import (
	"context"
	"fmt"

	"suretydesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Snapshot loads all five record sets for one search call.
func (r *mongoSnapshotRepo) Snapshot(ctx context.Context) (models.RecordSnapshot, error) {
	var snap models.RecordSnapshot

	if err := loadAll(ctx, r.clients, &snap.Clients); err != nil {
		return models.RecordSnapshot{}, fmt.Errorf("load clients: %w", err)
	}
	if err := loadAll(ctx, r.cases, &snap.Cases); err != nil {
		return models.RecordSnapshot{}, fmt.Errorf("load cases: %w", err)
	}
	if err := loadAll(ctx, r.bonds, &snap.Bonds); err != nil {
		return models.RecordSnapshot{}, fmt.Errorf("load bonds: %w", err)
	}
	if err := loadAll(ctx, r.payments, &snap.Payments); err != nil {
		return models.RecordSnapshot{}, fmt.Errorf("load payments: %w", err)
	}
	if err := loadAll(ctx, r.documents, &snap.Documents); err != nil {
		return models.RecordSnapshot{}, fmt.Errorf("load documents: %w", err)
	}

	return snap, nil
}

func loadAll[T any](ctx context.Context, coll *mongo.Collection, out *[]T) error {
	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}
