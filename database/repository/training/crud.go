package trainingRepo

import (
	"context"
	"errors"
	"time"

	"suretydesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateModule inserts a training module and returns its ID.
func (r *mongoTrainingRepo) CreateModule(ctx context.Context, mod models.TrainingModule) (string, error) {
	if mod.ID == "" {
		mod.ID = uuid.New().String()
	}
	mod.CreatedAt = time.Now()

	_, err := r.modules.InsertOne(ctx, mod)
	if err != nil {
		return "", err
	}
	return mod.ID, nil
}

// GetModule returns a training module by ID.
func (r *mongoTrainingRepo) GetModule(ctx context.Context, id string) (*models.TrainingModule, error) {
	var mod models.TrainingModule
	err := r.modules.FindOne(ctx, bson.M{"id": id}).Decode(&mod)
	if err != nil {
		return nil, err
	}
	return &mod, nil
}

// ListModules returns all training modules in course order.
func (r *mongoTrainingRepo) ListModules(ctx context.Context) ([]models.TrainingModule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sequence", Value: 1}})
	cursor, err := r.modules.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var mods []models.TrainingModule
	if err := cursor.All(ctx, &mods); err != nil {
		return nil, err
	}
	return mods, nil
}

// DeleteModule removes a training module by ID.
func (r *mongoTrainingRepo) DeleteModule(ctx context.Context, id string) error {
	res, err := r.modules.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("training module not found")
	}
	return nil
}

// RecordProgress upserts a staff member's completion of a module.
func (r *mongoTrainingRepo) RecordProgress(ctx context.Context, progress models.TrainingProgress) (string, error) {
	if progress.ID == "" {
		progress.ID = uuid.New().String()
	}
	if progress.CompletedAt.IsZero() {
		progress.CompletedAt = time.Now()
	}

	filter := bson.M{"staffId": progress.StaffID, "moduleId": progress.ModuleID}
	update := bson.M{"$set": progress}
	opts := options.Update().SetUpsert(true)
	if _, err := r.progress.UpdateOne(ctx, filter, update, opts); err != nil {
		return "", err
	}
	return progress.ID, nil
}

// ProgressForStaff returns all module completions for a staff member.
func (r *mongoTrainingRepo) ProgressForStaff(ctx context.Context, staffID string) ([]models.TrainingProgress, error) {
	cursor, err := r.progress.Find(ctx, bson.M{"staffId": staffID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var progress []models.TrainingProgress
	if err := cursor.All(ctx, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}
