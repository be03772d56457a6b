// Package server implements the HTTP server command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	claimServices "warrantly/internal/application/claim/services"
	claimUsecases "warrantly/internal/application/claim/usecases"
	warrantyUsecases "warrantly/internal/application/warranty/usecases"
	"warrantly/internal/domain/notification"
	"warrantly/internal/domain/warranty"
	"warrantly/internal/infrastructure/cache"
	"warrantly/internal/infrastructure/config"
	"warrantly/internal/infrastructure/database"
	"warrantly/internal/infrastructure/email"
	"warrantly/internal/infrastructure/migration"
	"warrantly/internal/infrastructure/persistence/seeds"
	"warrantly/internal/infrastructure/repository"
	httpRouter "warrantly/internal/interfaces/http"
	claimHandler "warrantly/internal/interfaces/http/handlers/claim"
	warrantyHandler "warrantly/internal/interfaces/http/handlers/warranty"
	"warrantly/internal/shared/biztime"
	"warrantly/internal/shared/db"
	"warrantly/internal/shared/logger"
	"warrantly/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
	seedData    bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the warranty claim engine HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&seedData, "seed", false, "Load warranty rules and claim categories from the seed file on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate,
		"seed", seedData)

	// Calendar-month warranty arithmetic depends on the business timezone.
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.SetMode(mapEnvToGinMode(env))
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment")
		}
		manager := migration.NewManager(env)
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			logger.Fatal("auto-migration failed", "error", err)
		}
	} else {
		reportMigrationVersion()
	}

	if seedData {
		if err := seeds.SeedWarrantyData(database.Get(), cfg.Seed.WarrantyRulesPath); err != nil {
			logger.Fatal("failed to seed warranty data", "error", err)
		}
		logger.Info("warranty seed data loaded", "path", cfg.Seed.WarrantyRulesPath)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		// Dedupe degrades to send-always when Redis is unavailable, so
		// this is not fatal.
		logger.Warn("redis unreachable, notification dedupe degraded", "error", err)
	}
	cancelPing()

	log := logger.NewLogger()

	txManager := db.NewTransactionManager(database.Get())
	claimRepo := repository.NewClaimRepository(database.Get())
	categoryRepo := repository.NewCategoryRepository(database.Get())
	userRepo := repository.NewUserRepository(database.Get())
	ruleRepo := repository.NewWarrantyRuleRepository(database.Get())

	warrantyResolver := warranty.NewResolver(ruleRepo)
	approverResolver := claimServices.NewApproverResolver(userRepo, log)
	intentRouter := notification.NewRouter(notification.Flags{
		NotifyCustomer:     cfg.Notification.NotifyCustomer,
		NotifyStaffCreator: cfg.Notification.NotifyStaffCreator,
	})

	dedup := cache.NewIntentDeduplicator(redisClient)
	dedupeTTL := time.Duration(cfg.Notification.DedupeTTLMinutes) * time.Minute
	mailer := email.NewIntentMailer(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	}, dedup, dedupeTTL, markdown.NewService(), log)

	createClaimUC := claimUsecases.NewCreateClaimUseCase(
		claimRepo, categoryRepo, userRepo, warrantyResolver, approverResolver,
		intentRouter, mailer, txManager, log)
	changeStatusUC := claimUsecases.NewChangeStatusUseCase(
		claimRepo, categoryRepo, userRepo, approverResolver,
		intentRouter, mailer, txManager, log)
	addNoteUC := claimUsecases.NewAddNoteUseCase(claimRepo, log)
	getClaimUC := claimUsecases.NewGetClaimUseCase(claimRepo, log)
	listClaimsUC := claimUsecases.NewListClaimsUseCase(claimRepo, log)
	resolveWarrantyUC := warrantyUsecases.NewResolveWarrantyUseCase(warrantyResolver, log)

	claimH := claimHandler.NewHandler(createClaimUC, changeStatusUC, addNoteUC, getClaimUC, listClaimsUC)
	warrantyH := warrantyHandler.NewHandler(resolveWarrantyUC)

	router := httpRouter.NewRouter(cfg, claimH, warrantyH, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", gin.Mode())

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func reportMigrationVersion() {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		logger.Warn("failed to get migration scripts path", "error", err)
		return
	}

	strategy := migration.NewGooseStrategy(scriptsPath)
	if gooseStrategy, ok := strategy.(*migration.GooseStrategy); ok {
		version, err := gooseStrategy.GetVersion(database.Get())
		if err != nil {
			logger.Warn("failed to check migration status", "error", err)
			return
		}
		logger.Info("current migration version", "version", version)
	}
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
