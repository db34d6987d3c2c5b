// Package migration imports profiles from the legacy document store the
// dashboard originally persisted to. It exists for the one-off cutover to
// Postgres and is only reachable through the -migrate flag.
package migration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/mascotlabs/robodash/robodash/database/models"
)

const defaultBatchSize = 500

type Migrator struct {
	pgDB      *bun.DB
	mongoDB   *mongo.Database
	batchSize int
	stats     Stats
}

type Stats struct {
	Accounts  int
	Badges    int
	Mascots   int
	Items     int
	Equipment int
	StartTime time.Time
}

func NewMigrator(pgDB *bun.DB, mongoDB *mongo.Database, batchSize int) *Migrator {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Migrator{
		pgDB:      pgDB,
		mongoDB:   mongoDB,
		batchSize: batchSize,
		stats:     Stats{StartTime: time.Now()},
	}
}

func Connect(ctx context.Context, uri, database string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to legacy store: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping legacy store: %w", err)
	}
	return client.Database(database), nil
}

// Legacy document shapes, as the old dashboard wrote them.

type legacyProfile struct {
	UserID           string            `bson:"userId"`
	Points           int64             `bson:"points"`
	LastLogin        time.Time         `bson:"lastLogin"`
	CompletedActions map[string]bson.M `bson:"completedActions"`
	CreatedAt        time.Time         `bson:"createdAt"`
}

type legacyBadge struct {
	UserID      string    `bson:"userId"`
	BadgeID     string    `bson:"badgeId"`
	DateAwarded time.Time `bson:"dateAwarded"`
}

type legacyMascot struct {
	UserID       string    `bson:"userId"`
	MascotID     string    `bson:"mascotId"`
	PurchaseDate time.Time `bson:"purchaseDate"`
	Experience   int64     `bson:"experience"`
	IsActive     bool      `bson:"isActive"`
}

type legacyItem struct {
	InstanceID string    `bson:"instanceId"`
	TemplateID string    `bson:"templateId"`
	UserID     string    `bson:"userId"`
	ObtainedAt time.Time `bson:"obtainedAt"`
}

type legacyEquipment struct {
	UserID     string `bson:"userId"`
	MascotID   string `bson:"mascotId"`
	InstanceID string `bson:"instanceId"`
}

// Run copies every legacy collection across. Accounts go first since the
// other tables hang off the user id; the rest migrate concurrently.
func (m *Migrator) Run(ctx context.Context) (*Stats, error) {
	if err := m.migrateAccounts(ctx); err != nil {
		return nil, fmt.Errorf("accounts: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.migrateBadges(gctx) })
	g.Go(func() error { return m.migrateMascots(gctx) })
	g.Go(func() error { return m.migrateItems(gctx) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Equipment references items, so it goes last.
	if err := m.migrateEquipment(ctx); err != nil {
		return nil, fmt.Errorf("equipment: %w", err)
	}

	slog.Info("Legacy migration complete",
		slog.Int("accounts", m.stats.Accounts),
		slog.Int("badges", m.stats.Badges),
		slog.Int("mascots", m.stats.Mascots),
		slog.Int("items", m.stats.Items),
		slog.Int("equipment", m.stats.Equipment),
		slog.Duration("took", time.Since(m.stats.StartTime)))
	return &m.stats, nil
}

func (m *Migrator) migrateAccounts(ctx context.Context) error {
	cursor, err := m.mongoDB.Collection("profiles").Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	batch := make([]*models.Account, 0, m.batchSize)
	for cursor.Next(ctx) {
		var doc legacyProfile
		if err := cursor.Decode(&doc); err != nil {
			slog.Warn("Skipping undecodable profile", slog.Any("error", err))
			continue
		}

		account := &models.Account{
			UserID:           doc.UserID,
			Points:           doc.Points,
			Level:            models.LevelForPoints(doc.Points),
			LastLogin:        doc.LastLogin,
			CompletedActions: convertActions(doc.CompletedActions),
			CreatedAt:        doc.CreatedAt,
			UpdatedAt:        time.Now(),
		}
		batch = append(batch, account)

		if len(batch) >= m.batchSize {
			if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Accounts); err != nil {
				return err
			}
		}
	}
	if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Accounts); err != nil {
		return err
	}
	return cursor.Err()
}

// convertActions maps the legacy per-action values (a date string for daily
// actions, a boolean or count otherwise) onto the unified progress shape.
func convertActions(legacy map[string]bson.M) map[string]models.ActionProgress {
	out := make(map[string]models.ActionProgress, len(legacy))
	for action, doc := range legacy {
		progress := models.ActionProgress{}
		if date, ok := doc["date"].(string); ok {
			progress.LastDate = date
		}
		switch count := doc["count"].(type) {
		case int32:
			progress.Count = int(count)
		case int64:
			progress.Count = int(count)
		case bool:
			if count {
				progress.Count = 1
			}
		}
		out[action] = progress
	}
	return out
}

func (m *Migrator) migrateBadges(ctx context.Context) error {
	cursor, err := m.mongoDB.Collection("user_badges").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("badges: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]*models.UserBadge, 0, m.batchSize)
	for cursor.Next(ctx) {
		var doc legacyBadge
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		batch = append(batch, &models.UserBadge{
			UserID:      doc.UserID,
			BadgeID:     doc.BadgeID,
			DateAwarded: doc.DateAwarded,
		})
		if len(batch) >= m.batchSize {
			if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Badges); err != nil {
				return err
			}
		}
	}
	if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Badges); err != nil {
		return err
	}
	return cursor.Err()
}

func (m *Migrator) migrateMascots(ctx context.Context) error {
	cursor, err := m.mongoDB.Collection("user_mascots").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("mascots: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]*models.UserMascot, 0, m.batchSize)
	for cursor.Next(ctx) {
		var doc legacyMascot
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		batch = append(batch, &models.UserMascot{
			UserID:       doc.UserID,
			MascotID:     doc.MascotID,
			PurchaseDate: doc.PurchaseDate,
			Experience:   doc.Experience,
			Level:        models.LevelForExperience(doc.Experience),
			IsActive:     doc.IsActive,
			CreatedAt:    doc.PurchaseDate,
			UpdatedAt:    time.Now(),
		})
		if len(batch) >= m.batchSize {
			if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Mascots); err != nil {
				return err
			}
		}
	}
	if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Mascots); err != nil {
		return err
	}
	return cursor.Err()
}

func (m *Migrator) migrateItems(ctx context.Context) error {
	cursor, err := m.mongoDB.Collection("user_inventory").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("items: %w", err)
	}
	defer cursor.Close(ctx)

	batch := make([]*models.UserItem, 0, m.batchSize)
	for cursor.Next(ctx) {
		var doc legacyItem
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		batch = append(batch, &models.UserItem{
			InstanceID: doc.InstanceID,
			TemplateID: doc.TemplateID,
			UserID:     doc.UserID,
			ObtainedAt: doc.ObtainedAt,
		})
		if len(batch) >= m.batchSize {
			if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Items); err != nil {
				return err
			}
		}
	}
	if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Items); err != nil {
		return err
	}
	return cursor.Err()
}

func (m *Migrator) migrateEquipment(ctx context.Context) error {
	cursor, err := m.mongoDB.Collection("equipment").Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	batch := make([]*models.Equipment, 0, m.batchSize)
	for cursor.Next(ctx) {
		var doc legacyEquipment
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		batch = append(batch, &models.Equipment{
			UserID:     doc.UserID,
			MascotID:   doc.MascotID,
			InstanceID: doc.InstanceID,
			EquippedAt: time.Now(),
		})
		if len(batch) >= m.batchSize {
			if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Equipment); err != nil {
				return err
			}
		}
	}
	if err := insertBatch(ctx, m.pgDB, &batch, &m.stats.Equipment); err != nil {
		return err
	}
	return cursor.Err()
}

func insertBatch[T any](ctx context.Context, db *bun.DB, batch *[]*T, counter *int) error {
	if len(*batch) == 0 {
		return nil
	}
	if _, err := db.NewInsert().Model(batch).Exec(ctx); err != nil {
		return err
	}
	*counter += len(*batch)
	*batch = (*batch)[:0]
	return nil
}
