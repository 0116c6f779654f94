// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Staff auth endpoints.
	RegisterStaffHandler gin.HandlerFunc
	LoginStaffHandler    gin.HandlerFunc
	LogoutStaffHandler   gin.HandlerFunc

	// Client endpoints.
	CreateClientHandler gin.HandlerFunc
	GetClientHandler    gin.HandlerFunc
	ListClientsHandler  gin.HandlerFunc
	UpdateClientHandler gin.HandlerFunc
	DeleteClientHandler gin.HandlerFunc

	// Case endpoints.
	CreateCaseHandler gin.HandlerFunc
	GetCaseHandler    gin.HandlerFunc
	ListCasesHandler  gin.HandlerFunc
	UpdateCaseHandler gin.HandlerFunc
	DeleteCaseHandler gin.HandlerFunc

	// Bond endpoints.
	IssueBondHandler        gin.HandlerFunc
	GetBondHandler          gin.HandlerFunc
	ListBondsHandler        gin.HandlerFunc
	UpdateBondStatusHandler gin.HandlerFunc

	// Payment endpoints.
	RecordPaymentHandler    gin.HandlerFunc
	GetPaymentHandler       gin.HandlerFunc
	ListBondPaymentsHandler gin.HandlerFunc
	MarkPaymentPaidHandler  gin.HandlerFunc

	// Document endpoints.
	UploadDocumentHandler gin.HandlerFunc
	GetDocumentURLHandler gin.HandlerFunc
	ListDocumentsHandler  gin.HandlerFunc
	DeleteDocumentHandler gin.HandlerFunc

	// Check-in portal endpoints.
	PortalLoginHandler       gin.HandlerFunc
	SubmitCheckInHandler     gin.HandlerFunc
	CheckInHistoryHandler    gin.HandlerFunc
	PortalNoticesHandler     gin.HandlerFunc
	ClientHistoryHandler     gin.HandlerFunc
	MissedCheckInsHandler    gin.HandlerFunc
	ScheduleRemindersHandler gin.HandlerFunc

	// Search endpoint.
	SearchRecordsHandler gin.HandlerFunc

	// Training endpoints.
	CreateModuleHandler   gin.HandlerFunc
	ListModulesHandler    gin.HandlerFunc
	GetModuleHandler      gin.HandlerFunc
	DeleteModuleHandler   gin.HandlerFunc
	RecordProgressHandler gin.HandlerFunc
	MyProgressHandler     gin.HandlerFunc
}
