// File: services/checkin/service.go
package checkin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	caseRepo "suretydesk/database/repository/casefile"
	checkinRepo "suretydesk/database/repository/checkin"
	clientRepo "suretydesk/database/repository/client"
	ai "suretydesk/services/intelligence"
	"suretydesk/services/storage"
	"suretydesk/utils"

	"suretydesk/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TaskTypeCourtReminder is the asynq task type for scheduled court-date reminders.
const TaskTypeCourtReminder = "reminder:courtdate"

// reminderLeadTime is how far before the court date the reminder fires.
const reminderLeadTime = 48 * time.Hour

// CheckInService handles the client check-in portal and court-date reminders.
type CheckInService interface {
	SubmitCheckIn(ctx context.Context, clientID, photoPath, mimeType, ip string) (*models.CheckIn, error)
	History(ctx context.Context, clientID string) ([]models.CheckIn, error)
	MissedCheckIns(ctx context.Context, window time.Duration) ([]models.Client, error)
	ScheduleCourtReminders(ctx context.Context, within time.Duration) (int, error)
}

// DefaultCheckInService is the production implementation of CheckInService.
type DefaultCheckInService struct {
	CheckInRepo checkinRepo.CheckInRepository
	ClientRepo  clientRepo.ClientRepository
	CaseRepo    caseRepo.CaseRepository
	Storage     storage.StorageService
	Verifier    ai.PhotoVerifier // nil when no vision backend is configured
	Tasks       *asynq.Client
}

// SubmitCheckIn records a check-in. The selfie is classified when a verifier
// is configured; verification failures degrade to an unverified check-in
// rather than blocking the client.
func (s *DefaultCheckInService) SubmitCheckIn(ctx context.Context, clientID, photoPath, mimeType, ip string) (*models.CheckIn, error) {
	logger := utils.GetLogger().With(zap.String("clientID", clientID))

	if _, err := s.ClientRepo.GetByID(ctx, clientID); err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	ci := models.CheckIn{
		ClientID:  clientID,
		CheckedAt: time.Now(),
		IP:        ip,
	}

	if photoPath != "" {
		if s.Verifier != nil {
			data, err := os.ReadFile(photoPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read check-in photo: %w", err)
			}
			verdict, err := s.Verifier.VerifyCheckInPhoto(ctx, data, mimeType)
			if err != nil {
				logger.Warn("Photo verification unavailable, recording unverified check-in", zap.Error(err))
				ci.VerificationNote = "verification unavailable"
			} else {
				ci.PhotoVerified = verdict.Acceptable
				ci.VerificationNote = verdict.Label
			}
		}

		storageID, err := s.Storage.UploadFile(ctx, photoPath, filepath.Join("checkins", clientID))
		if err != nil {
			return nil, fmt.Errorf("failed to store check-in photo: %w", err)
		}
		ci.PhotoStorageID = storageID
	}

	id, err := s.CheckInRepo.Create(ctx, ci)
	if err != nil {
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}
	ci.ID = id

	logger.Info("Check-in recorded",
		zap.String("checkInID", ci.ID),
		zap.Bool("photoVerified", ci.PhotoVerified))
	return &ci, nil
}

// History returns a client's check-ins, newest first.
func (s *DefaultCheckInService) History(ctx context.Context, clientID string) ([]models.CheckIn, error) {
	return s.CheckInRepo.GetByClientID(ctx, clientID)
}

// MissedCheckIns lists clients with no check-in inside the window.
func (s *DefaultCheckInService) MissedCheckIns(ctx context.Context, window time.Duration) ([]models.Client, error) {
	clients, err := s.ClientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	checkedIn, err := s.CheckInRepo.ClientsCheckedInSince(ctx, time.Now().Add(-window))
	if err != nil {
		return nil, fmt.Errorf("failed to load recent check-ins: %w", err)
	}

	seen := make(map[string]bool, len(checkedIn))
	for _, id := range checkedIn {
		seen[id] = true
	}

	var missed []models.Client
	for _, c := range clients {
		if !seen[c.ID] {
			missed = append(missed, c)
		}
	}
	return missed, nil
}

// ScheduleCourtReminders enqueues a reminder task for every case with a court
// date inside the window. Returns the number of reminders enqueued.
func (s *DefaultCheckInService) ScheduleCourtReminders(ctx context.Context, within time.Duration) (int, error) {
	logger := utils.GetLogger()

	if s.Tasks == nil {
		return 0, errors.New("reminder queue is not configured")
	}

	cases, err := s.CaseRepo.UpcomingCourtDates(ctx, within)
	if err != nil {
		return 0, fmt.Errorf("failed to load upcoming court dates: %w", err)
	}

	enqueued := 0
	for _, cf := range cases {
		fireAt := cf.CourtDate.Add(-reminderLeadTime)
		if fireAt.Before(time.Now()) {
			fireAt = time.Now()
		}
		payload := models.ReminderPayload{
			ClientID: cf.ClientID,
			CaseID:   cf.ID,
			Title:    "Court date reminder",
			Body: fmt.Sprintf("You are due at %s, %s County, on %s for case %s.",
				cf.CourtName, cf.County, cf.CourtDate.Format("January 2, 2006 at 3:04 PM"), cf.CaseNumber),
			FireDate: fireAt.Format(time.RFC3339),
		}
		data, err := json.Marshal(payload)
		if err != nil {
			return enqueued, fmt.Errorf("failed to marshal reminder payload: %w", err)
		}

		task := asynq.NewTask(TaskTypeCourtReminder, data)
		if _, err := s.Tasks.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3)); err != nil {
			logger.Error("Failed to enqueue court reminder",
				zap.String("caseID", cf.ID), zap.Error(err))
			continue
		}
		enqueued++
	}

	logger.Info("Court reminders scheduled", zap.Int("count", enqueued))
	return enqueued, nil
}
