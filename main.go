package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mascotlabs/robodash/robodash"
	"github.com/mascotlabs/robodash/robodash/assets"
	"github.com/mascotlabs/robodash/robodash/badges"
	"github.com/mascotlabs/robodash/robodash/catalog"
	"github.com/mascotlabs/robodash/robodash/database"
	"github.com/mascotlabs/robodash/robodash/database/repositories"
	"github.com/mascotlabs/robodash/robodash/events"
	"github.com/mascotlabs/robodash/robodash/items"
	"github.com/mascotlabs/robodash/robodash/logger"
	"github.com/mascotlabs/robodash/robodash/mascots"
	"github.com/mascotlabs/robodash/robodash/migration"
	"github.com/mascotlabs/robodash/robodash/rewards"
	"github.com/mascotlabs/robodash/robodash/web"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	customHandler := logger.NewHandler("Robodash")
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Robodash ledger",
		slog.String("version", version),
		slog.String("commit", commit))

	path := flag.String("config", "config.toml", "path to config")
	migrate := flag.Bool("migrate", false, "import the legacy profile store and exit")
	flag.Parse()

	cfg, err := robodash.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	customHandler.WithLevel(cfg.Log.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.New(ctx, database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	})
	if err != nil {
		slog.Error("Database connection failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := db.ProvisionTables(ctx); err != nil {
		slog.Error("Failed to provision tables", slog.Any("error", err))
		os.Exit(1)
	}

	if *migrate {
		runMigration(ctx, cfg, db)
		return
	}

	accountRepo := repositories.NewAccountRepository(db.BunDB())
	badgeRepo := repositories.NewBadgeRepository(db.BunDB())
	mascotRepo := repositories.NewMascotRepository(db.BunDB())
	itemRepo := repositories.NewItemRepository(db.BunDB())

	bus := events.NewBus()
	rewardsSvc := rewards.NewService(accountRepo, bus)
	badgesSvc := badges.NewService(badgeRepo, rewardsSvc, bus)
	mascotsSvc := mascots.NewService(mascotRepo, rewardsSvc, bus)
	itemsSvc := items.NewService(itemRepo, mascotRepo, rewardsSvc, bus,
		items.NewGenerator(time.Now().UnixNano()))

	var spaces *assets.SpacesService
	if cfg.Spaces.Bucket != "" {
		spaces, err = assets.NewSpacesService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.AssetRoot,
		)
		if err != nil {
			slog.Error("Failed to initialize asset storage", slog.Any("error", err))
			os.Exit(1)
		}
	}

	app := web.NewServer(&web.Handlers{
		Rewards: rewardsSvc,
		Badges:  badgesSvc,
		Mascots: mascotsSvc,
		Items:   itemsSvc,
		Search:  catalog.NewSearchService(),
		Assets:  spaces,
	})

	go func() {
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			slog.Error("HTTP server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	slog.Info("Ledger is running. Press CTRL-C to exit.",
		slog.String("addr", cfg.Server.Addr()))
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s

	slog.Info("Shutting down...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("Shutdown failed", slog.Any("error", err))
	}
}

func runMigration(ctx context.Context, cfg *robodash.Config, db *database.DB) {
	mongoDB, err := migration.Connect(ctx, cfg.Migration.MongoURI, cfg.Migration.MongoDatabase)
	if err != nil {
		slog.Error("Failed to reach legacy store", slog.Any("error", err))
		os.Exit(1)
	}

	migrator := migration.NewMigrator(db.BunDB(), mongoDB, cfg.Migration.BatchSize)
	// The import can outlive the startup timeout on large stores.
	stats, err := migrator.Run(context.WithoutCancel(ctx))
	if err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Migration finished",
		slog.Int("accounts", stats.Accounts),
		slog.Int("items", stats.Items))
}
