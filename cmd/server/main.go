package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/officerhub/report-management-api/internal/config"
	"github.com/officerhub/report-management-api/internal/handlers"
	"github.com/officerhub/report-management-api/internal/scheduler"
	"github.com/officerhub/report-management-api/internal/services"
	"github.com/officerhub/report-management-api/internal/store"
	"github.com/officerhub/report-management-api/internal/sync"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize the document stores
	reportStore, err := store.NewReportStore(cfg.ReportsDir)
	if err != nil {
		log.Fatalf("Failed to initialize report storage: %v", err)
	}
	taskStore, err := store.NewTaskStore(cfg.ReportsDir)
	if err != nil {
		log.Fatalf("Failed to initialize task storage: %v", err)
	}

	// Connect the remote mirror when configured
	var syncService *sync.Service
	if cfg.DatabaseURL != "" {
		syncService, err = sync.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to sync database: %v", err)
		}
	}

	// Initialize services
	reportService := services.NewReportService(reportStore, taskStore, syncService, cfg.RetentionDays)
	taskService := services.NewTaskService(taskStore, syncService)

	// Start the maintenance jobs
	jobs := scheduler.New(reportService, reportStore, taskStore, syncService)
	if err := jobs.Start(cfg.SweepCron, cfg.BackupCron); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer jobs.Stop()

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(reportService)
	taskHandler := handlers.NewTaskHandler(taskService)
	analyticsHandler := handlers.NewAnalyticsHandler(reportService, taskService)
	exportHandler := handlers.NewExportHandler(reportService, taskService, reportStore)
	folderHandler := handlers.NewFolderHandler(reportStore)
	templateHandler := handlers.NewTemplateHandler(reportStore)
	syncHandler := handlers.NewSyncHandler(syncService, reportStore, taskStore)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Report Management API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		reports := api.Group("/reports")
		{
			reports.POST("", reportHandler.SubmitReport)
			reports.GET("", reportHandler.ListReports)
			reports.GET("/export", exportHandler.ExportReports)
			reports.POST("/archive", reportHandler.ArchiveReports)
			reports.GET("/:officer/:date/:type", reportHandler.GetReport)
			reports.POST("/:officer/:date/:type/review", reportHandler.ReviewReport)
			reports.POST("/:officer/:date/:type/comments", reportHandler.AddComment)
			reports.DELETE("/:officer/:date/:type", reportHandler.DeleteReport)
		}

		officers := api.Group("/officers")
		{
			officers.GET("", folderHandler.ListOfficers)
			officers.POST("", folderHandler.CreateOfficer)
			officers.GET("/:officer/files", folderHandler.OfficerFiles)
			officers.PUT("/:officer", folderHandler.RenameOfficer)
			officers.DELETE("/:officer", folderHandler.DeleteOfficer)
			officers.POST("/:officer/attachments", folderHandler.UploadAttachment)
		}

		templates := api.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("", templateHandler.SaveTemplate)
			templates.GET("/:name", templateHandler.GetTemplate)
			templates.DELETE("/:name", templateHandler.DeleteTemplate)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/export", exportHandler.ExportTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/comments", taskHandler.AddComment)
			tasks.POST("/:id/link-report", taskHandler.LinkReport)
		}

		analyticsRoutes := api.Group("/analytics")
		{
			analyticsRoutes.GET("/summary", analyticsHandler.Summary)
			analyticsRoutes.GET("/volume", analyticsHandler.Volume)
			analyticsRoutes.GET("/performance", analyticsHandler.Performance)
			analyticsRoutes.GET("/tasks", analyticsHandler.Tasks)
		}

		syncRoutes := api.Group("/sync")
		{
			syncRoutes.POST("/backup", syncHandler.Backup)
			syncRoutes.POST("/restore", syncHandler.Restore)
			syncRoutes.GET("/status", syncHandler.Status)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
