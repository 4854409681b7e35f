package main

import (
	_ "KisaanPartner-Backend/docs"
	"KisaanPartner-Backend/src/config"
	"KisaanPartner-Backend/src/controllers"
	"KisaanPartner-Backend/src/database"
	"KisaanPartner-Backend/src/jobs"
	"KisaanPartner-Backend/src/logger"
	"KisaanPartner-Backend/src/middleware"
	"KisaanPartner-Backend/src/routes"
	"KisaanPartner-Backend/src/services/attendance"
	"KisaanPartner-Backend/src/services/employees"
	"KisaanPartner-Backend/src/services/labours"
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// @title KisaanPartner API
// @version 1.0
// @description Labour, attendance and employee management for KisaanPartner
// @BasePath /
func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ config:", err)
		os.Exit(1)
	}

	log, err := logger.New(os.Stderr, "api", cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "❌ logger:", err)
		os.Exit(1)
	}
	if !envLoaded {
		log.Warn("⚠️ No .env file found, using environment variables only")
	}

	ctx := context.Background()

	// เชื่อมต่อกับ MongoDB
	store, err := database.ConnectMongoDB(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	if err != nil {
		log.Fatal("❌ Error connecting to the database", "err", err)
	}
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Warn("⚠️ Could not ensure indexes", "err", err)
	}

	// Redis เป็น optional: ไม่มีก็ยังทำงานได้ (ไม่มี cache และ reconcile รันทันที)
	redisClient, err := database.ConnectRedis(ctx, cfg.RedisURI)
	if err != nil {
		log.Warn("⚠️ Redis unavailable, continuing without cache and task queue", "err", err)
		redisClient = nil
	}
	var enqueuer *jobs.Enqueuer
	if redisClient != nil {
		log.Info("✅ Redis connected", "addr", cfg.RedisURI)
		enqueuer = jobs.NewEnqueuer(database.NewAsynqClient(cfg.RedisURI))
	} else {
		enqueuer = jobs.NewEnqueuer(nil)
	}

	labourService := labours.NewService(
		store.LabourCollection,
		labours.NewVillageCache(redisClient, cfg.VillageCacheTTL, log),
		log,
	)
	ledgerOpts := []attendance.Option{attendance.WithLogger(log)}
	if enqueuer.Available() {
		ledgerOpts = append(ledgerOpts, attendance.WithReconciler(enqueuer))
	}
	ledger := attendance.NewLedger(
		attendance.NewMongoAssignmentStore(store.AssignmentCollection),
		labourService,
		ledgerOpts...,
	)

	// สร้าง app instance
	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(log),
		DisableStartupMessage: true,
	})
	middleware.Setup(app, cfg.AllowedOrigins)

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, routes.Handlers{
		Labour: &controllers.LabourController{
			Labours: labourService,
			Ledger:  ledger,
			Jobs:    enqueuer,
			Timeout: cfg.RequestTimeout,
		},
		Employee: &controllers.EmployeeController{
			Employees: employees.NewService(store.EmployeeCollection, log),
			Timeout:   cfg.RequestTimeout,
		},
		Health: &controllers.HealthController{DB: store},
	})
	middleware.ServeSPA(app, cfg.StaticDir)

	// เริ่มเซิร์ฟเวอร์
	go func() {
		log.Info("🚀 Server is running", "port", cfg.AppPort)
		if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppPort))); err != nil {
			log.Error("❌ Server stopped", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("❌ HTTP shutdown", "err", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := enqueuer.Close(); err != nil {
		log.Error("❌ Asynq client close", "err", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error("❌ MongoDB close", "err", err)
	}
}
