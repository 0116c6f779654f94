package models

import "time"

// TrainingModule is one unit of the agent onboarding course.
type TrainingModule struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Topic     string    `bson:"topic" json:"topic"`
	Content   string    `bson:"content" json:"content"`
	Sequence  int       `bson:"sequence" json:"sequence"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// TrainingProgress marks a staff member's completion of a module.
type TrainingProgress struct {
	ID          string    `bson:"id" json:"id"`
	StaffID     string    `bson:"staffId" json:"staffId"`
	ModuleID    string    `bson:"moduleId" json:"moduleId"`
	Score       int       `bson:"score" json:"score"`
	CompletedAt time.Time `bson:"completedAt" json:"completedAt"`
}
