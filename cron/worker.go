// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"suretydesk/config"
	clientRepo "suretydesk/database/repository/client"
	"suretydesk/models"
	"suretydesk/services/checkin"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// NewTaskClient returns an asynq client on the reminder Redis DB.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
}

// ReminderWorker consumes scheduled reminder tasks and delivers them as
// portal notices on the client record.
type ReminderWorker struct {
	server  *asynq.Server
	clients clientRepo.ClientRepository
}

// NewReminderWorker builds the worker with a small concurrency pool.
func NewReminderWorker(clients clientRepo.ClientRepository) *ReminderWorker {
	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)
	return &ReminderWorker{server: server, clients: clients}
}

// Start runs the worker in a background goroutine.
func (w *ReminderWorker) Start() {
	mux := asynq.NewServeMux()
	mux.HandleFunc(checkin.TaskTypeCourtReminder, w.handleCourtReminder)

	go func() {
		if err := w.server.Run(mux); err != nil {
			log.Printf("Reminder worker stopped: %v", err)
		}
	}()
}

// Shutdown stops the worker, waiting for in-flight tasks.
func (w *ReminderWorker) Shutdown() {
	w.server.Shutdown()
}

// handleCourtReminder turns a reminder task into a portal notice.
func (w *ReminderWorker) handleCourtReminder(ctx context.Context, t *asynq.Task) error {
	var payload models.ReminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal reminder payload: %w", err)
	}

	notice := models.PortalNotice{
		ID:        uuid.New().String(),
		Title:     payload.Title,
		Body:      payload.Body,
		CreatedAt: time.Now(),
	}
	if err := w.clients.AppendNotice(ctx, payload.ClientID, notice); err != nil {
		return fmt.Errorf("failed to deliver reminder for case %s: %w", payload.CaseID, err)
	}
	return nil
}
