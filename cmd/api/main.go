package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrpulse/attendance-backend-go/internal/config"
	appHTTP "github.com/hrpulse/attendance-backend-go/internal/handler/http"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/cron"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/database"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/email"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/jwt"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/sse"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/storage"
	"github.com/hrpulse/attendance-backend-go/internal/repository/postgresql"
	"github.com/hrpulse/attendance-backend-go/internal/service/approval"
	attendanceService "github.com/hrpulse/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/hrpulse/attendance-backend-go/internal/service/auth"
	"github.com/hrpulse/attendance-backend-go/internal/service/file"
	holidayService "github.com/hrpulse/attendance-backend-go/internal/service/holiday"
	leaveService "github.com/hrpulse/attendance-backend-go/internal/service/leave"
	notificationService "github.com/hrpulse/attendance-backend-go/internal/service/notification"
	overtimeService "github.com/hrpulse/attendance-backend-go/internal/service/overtime"
	settingsService "github.com/hrpulse/attendance-backend-go/internal/service/settings"
	workRequestService "github.com/hrpulse/attendance-backend-go/internal/service/workrequest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	workRequestRepo := postgresql.NewWorkRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, emailService, notificationService.Config{})
	gate := approval.NewGate(settingRepo, employeeRepo, cfg.Approval)
	rateResolver := overtimeService.NewRateResolver(holidayRepo)

	settingsSvc := settingsService.NewSettingsService(settingRepo)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		branchRepo,
		settingsSvc,
		fileSvc,
		cfg.Work,
	)
	overtimeSvc := overtimeService.NewOvertimeService(
		txManager,
		overtimeRepo,
		employeeRepo,
		settingsSvc,
		rateResolver,
		gate,
		notificationSvc,
		cfg.Work,
	)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRepo, employeeRepo, gate, notificationSvc)
	workRequestSvc := workRequestService.NewWorkRequestService(workRequestRepo, employeeRepo, gate, notificationSvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, branchRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	workRequestHandler := appHTTP.NewWorkRequestHandler(workRequestSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		attendanceHandler,
		overtimeHandler,
		leaveHandler,
		workRequestHandler,
		holidayHandler,
		settingsHandler,
		notificationHandler,
		cfg.Storage.BasePath,
	)

	scheduler := cron.NewScheduler()
	housekeeping := cron.NewHousekeepingJobs(
		attendanceRepo,
		overtimeRepo,
		leaveRepo,
		workRequestRepo,
		employeeRepo,
		notificationSvc,
		cfg.Work,
	)
	housekeeping.RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
	scheduler.Stop()
	notificationSvc.Stop()
}
