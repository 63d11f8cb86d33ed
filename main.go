package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/emp-classrooms-backend/api"
	"github.com/rpupo63/emp-classrooms-backend/config"
	"github.com/rpupo63/emp-classrooms-backend/database"
	"github.com/rpupo63/emp-classrooms-backend/errs"
	"github.com/rpupo63/emp-classrooms-backend/models"
)

func main() {
	if err := run(); err != nil {
		zlog.Fatal().Err(err).Msg("Exiting")
	}
}

func run() error {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zlog.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		zlog.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := config.New()
	if err := config.LoadSSMParameters(ctx, c); err != nil {
		return err
	}
	if level, err := zerolog.ParseLevel(config.GetString(c, "LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	connStr, err := connectionString(c)
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if replica := config.GetString(c, "DB_REPLICA_DSN", ""); replica != "" {
		if err := database.UseReplicas(db, postgres.New(postgres.Config{DSN: replica, PreferSimpleProtocol: true})); err != nil {
			return err
		}
		zlog.Info().Msg("Read replica registered")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return fmt.Errorf("testing database connection: %w", err)
	}

	if config.GetBool(c, "GENERATE_MODELS", false) {
		zlog.Info().Msg("Generating models and query helpers...")
		return models.GenerateModels(db)
	}

	if config.GetBool(c, "GENERATE_COLUMN_REPORT", false) {
		zlog.Info().Msg("Generating column mismatch report...")
		_, err := models.GenerateColumnMismatchReport(db)
		return err
	}

	if config.GetBool(c, "AUTO_MIGRATE", false) {
		if err := models.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrating models: %w", err)
		}
	}

	server, err := api.NewServer(database.New(db), c)
	if err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		zlog.Info().Msg("Closing server")
		server.ShutdownGracefully(30 * time.Second)
		return nil
	})

	return g.Wait()
}

// connectionString builds the Postgres DSN for DB_TYPE
func connectionString(c map[string]string) (string, error) {
	dbType := config.GetString(c, "DB_TYPE", "local")
	zlog.Info().Str("dbType", dbType).Msg("Resolving database connection")

	switch dbType {
	case "url":
		dsn := config.GetString(c, "DATABASE_URL", "")
		if dsn == "" {
			return "", errs.NewEnvironmentVariableError("DATABASE_URL")
		}
		return dsn, nil
	case "supa":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		), nil
	case "local":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.GetString(c, "DB_HOST", "localhost"),
			config.GetString(c, "DB_USER", "postgres"),
			config.GetString(c, "DB_PASSWORD", "postgres"),
			config.GetString(c, "DB_NAME", "emp_classrooms"),
			config.GetString(c, "DB_PORT", "5432"),
		), nil
	default:
		return "", errs.NewConfigError("DB_TYPE", fmt.Errorf("unsupported value %q", dbType))
	}
}
