// File: suretydesk/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"suretydesk/config"
	"suretydesk/cron"
	"suretydesk/database"
	bondRepoPkg "suretydesk/database/repository/bond"
	caseRepoPkg "suretydesk/database/repository/casefile"
	checkinRepoPkg "suretydesk/database/repository/checkin"
	clientRepoPkg "suretydesk/database/repository/client"
	documentRepoPkg "suretydesk/database/repository/document"
	paymentRepoPkg "suretydesk/database/repository/payment"
	recordsRepoPkg "suretydesk/database/repository/records"
	staffRepoPkg "suretydesk/database/repository/staff"
	trainingRepoPkg "suretydesk/database/repository/training"
	"suretydesk/handlers"
	"suretydesk/middleware"
	"suretydesk/routes"
	"suretydesk/services/checkin"
	"suretydesk/services/contract"
	ai "suretydesk/services/intelligence"
	"suretydesk/services/payment"
	"suretydesk/services/search"
	"suretydesk/services/staff"
	"suretydesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	clientRepo := clientRepoPkg.NewMongoClientRepo()
	caseRepo := caseRepoPkg.NewMongoCaseRepo()
	bondRepo := bondRepoPkg.NewMongoBondRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	documentRepo := documentRepoPkg.NewMongoDocumentRepo()
	checkinRepo := checkinRepoPkg.NewMongoCheckInRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	trainingRepo := trainingRepoPkg.NewMongoTrainingRepo()
	recordsRepo := recordsRepoPkg.NewMongoSnapshotRepo()

	// Ranking backend selection. An empty provider leaves the backend nil
	// and search runs on the local ranker only.
	var rankingBackend ai.RankingBackend
	var photoVerifier ai.PhotoVerifier
	switch config.AppConfig.RankingProvider {
	case "gemini":
		gemini, err := ai.NewGeminiBackend(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Warnf("main: gemini backend unavailable, search runs local-only: %v", err)
		} else {
			rankingBackend = gemini
			photoVerifier = gemini
		}
	case "openai":
		rankingBackend = ai.NewOpenAIBackend(ai.OpenAIConfig{
			APIKey:  config.AppConfig.OpenAIAPIKey,
			BaseURL: config.AppConfig.OpenAIBaseURL,
			Model:   config.AppConfig.OpenAIModel,
		})
	}

	// services.
	staffService := &staff.DefaultStaffService{Repo: staffRepo}

	searchService := &search.DefaultSearchService{
		Records: recordsRepo,
		Backend: rankingBackend,
	}

	paymentService := &payment.DefaultPaymentService{
		PaymentRepo: paymentRepo,
		BondRepo:    bondRepo,
	}

	contractService, err := contract.NewGeneratorService(storageService, documentRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize contract generator: %v", err)
	}

	taskClient := cron.NewTaskClient()
	defer taskClient.Close()

	checkinService := &checkin.DefaultCheckInService{
		CheckInRepo: checkinRepo,
		ClientRepo:  clientRepo,
		CaseRepo:    caseRepo,
		Storage:     storageService,
		Verifier:    photoVerifier,
		Tasks:       taskClient,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(staffService)
	clientHandler := handlers.NewClientHandler(clientRepo)
	caseHandler := handlers.NewCaseHandler(caseRepo)
	bondHandler := handlers.NewBondHandler(bondRepo, clientRepo, caseRepo, contractService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	documentHandler := handlers.NewDocumentHandler(documentRepo, storageService)
	checkinHandler := handlers.NewCheckInHandler(checkinService, clientRepo)
	searchHandler := handlers.NewSearchHandler(searchService)
	trainingHandler := handlers.NewTrainingHandler(trainingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Staff auth endpoints.
		RegisterStaffHandler: authHandler.RegisterStaffHandler,
		LoginStaffHandler:    authHandler.LoginStaffHandler,
		LogoutStaffHandler:   authHandler.LogoutStaffHandler,

		// Client endpoints.
		CreateClientHandler: clientHandler.CreateClientHandler,
		GetClientHandler:    clientHandler.GetClientHandler,
		ListClientsHandler:  clientHandler.ListClientsHandler,
		UpdateClientHandler: clientHandler.UpdateClientHandler,
		DeleteClientHandler: clientHandler.DeleteClientHandler,

		// Case endpoints.
		CreateCaseHandler: caseHandler.CreateCaseHandler,
		GetCaseHandler:    caseHandler.GetCaseHandler,
		ListCasesHandler:  caseHandler.ListCasesHandler,
		UpdateCaseHandler: caseHandler.UpdateCaseHandler,
		DeleteCaseHandler: caseHandler.DeleteCaseHandler,

		// Bond endpoints.
		IssueBondHandler:        bondHandler.IssueBondHandler,
		GetBondHandler:          bondHandler.GetBondHandler,
		ListBondsHandler:        bondHandler.ListBondsHandler,
		UpdateBondStatusHandler: bondHandler.UpdateBondStatusHandler,

		// Payment endpoints.
		RecordPaymentHandler:    paymentHandler.RecordPaymentHandler,
		GetPaymentHandler:       paymentHandler.GetPaymentHandler,
		ListBondPaymentsHandler: paymentHandler.ListBondPaymentsHandler,
		MarkPaymentPaidHandler:  paymentHandler.MarkPaymentPaidHandler,

		// Document endpoints.
		UploadDocumentHandler: documentHandler.UploadDocumentHandler,
		GetDocumentURLHandler: documentHandler.GetDocumentURLHandler,
		ListDocumentsHandler:  documentHandler.ListDocumentsHandler,
		DeleteDocumentHandler: documentHandler.DeleteDocumentHandler,

		// Check-in portal endpoints.
		PortalLoginHandler:       checkinHandler.PortalLoginHandler,
		SubmitCheckInHandler:     checkinHandler.SubmitCheckInHandler,
		CheckInHistoryHandler:    checkinHandler.CheckInHistoryHandler,
		PortalNoticesHandler:     checkinHandler.PortalNoticesHandler,
		ClientHistoryHandler:     checkinHandler.ClientHistoryHandler,
		MissedCheckInsHandler:    checkinHandler.MissedCheckInsHandler,
		ScheduleRemindersHandler: checkinHandler.ScheduleRemindersHandler,

		// Search endpoint.
		SearchRecordsHandler: searchHandler.SearchRecordsHandler,

		// Training endpoints.
		CreateModuleHandler:   trainingHandler.CreateModuleHandler,
		ListModulesHandler:    trainingHandler.ListModulesHandler,
		GetModuleHandler:      trainingHandler.GetModuleHandler,
		DeleteModuleHandler:   trainingHandler.DeleteModuleHandler,
		RecordProgressHandler: trainingHandler.RecordProgressHandler,
		MyProgressHandler:     trainingHandler.MyProgressHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	reminderWorker := cron.NewReminderWorker(clientRepo)
	reminderWorker.Start()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	reminderWorker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
