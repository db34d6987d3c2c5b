package repositories

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/mascotlabs/robodash/robodash/database/models"
	"github.com/uptrace/bun"
)

type MascotRepository interface {
	GetByUser(ctx context.Context, userID string) ([]*models.UserMascot, error)
	Get(ctx context.Context, userID, mascotID string) (*models.UserMascot, error)
	GetActive(ctx context.Context, userID string) (*models.UserMascot, error)
	Purchase(ctx context.Context, userID, mascotID string, price int64) (*models.UserMascot, error)
	SetActive(ctx context.Context, userID, mascotID string) error
	AddExperience(ctx context.Context, userID, mascotID string, amount int64) (*models.UserMascot, error)
}

type mascotRepository struct {
	db *bun.DB
}

func NewMascotRepository(db *bun.DB) MascotRepository {
	return &mascotRepository{db: db}
}

func (r *mascotRepository) GetByUser(ctx context.Context, userID string) ([]*models.UserMascot, error) {
	var mascots []*models.UserMascot
	err := r.db.NewSelect().
		Model(&mascots).
		Where("user_id = ?", userID).
		Order("purchase_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return mascots, nil
}

func (r *mascotRepository) Get(ctx context.Context, userID, mascotID string) (*models.UserMascot, error) {
	mascot := new(models.UserMascot)
	err := r.db.NewSelect().
		Model(mascot).
		Where("user_id = ? AND mascot_id = ?", userID, mascotID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mascot, nil
}

func (r *mascotRepository) GetActive(ctx context.Context, userID string) (*models.UserMascot, error) {
	mascot := new(models.UserMascot)
	err := r.db.NewSelect().
		Model(mascot).
		Where("user_id = ? AND is_active = TRUE", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return mascot, nil
}

// Purchase debits the account and inserts the ownership row in one
// transaction. The first mascot a user buys becomes active.
func (r *mascotRepository) Purchase(ctx context.Context, userID, mascotID string, price int64) (*models.UserMascot, error) {
	var mascot *models.UserMascot

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.UserMascot)(nil)).
			Where("user_id = ? AND mascot_id = ?", userID, mascotID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			return ErrAlreadyOwned
		}

		owned, err := tx.NewSelect().
			Model((*models.UserMascot)(nil)).
			Where("user_id = ?", userID).
			Count(ctx)
		if err != nil {
			return err
		}

		res, err := tx.NewUpdate().
			Model((*models.Account)(nil)).
			Set("points = points - ?", price).
			Set("level = (points - ?) / ? + 1", price, models.PointsPerLevel).
			Set("updated_at = ?", time.Now()).
			Where("user_id = ? AND points >= ?", userID, price).
			Exec(ctx)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrInsufficientPoints
		}

		mascot = &models.UserMascot{
			UserID:       userID,
			MascotID:     mascotID,
			PurchaseDate: time.Now(),
			Experience:   0,
			Level:        1,
			IsActive:     owned == 0,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		_, err = tx.NewInsert().Model(mascot).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Mascot purchased",
		slog.String("type", "db"),
		slog.String("user_id", userID),
		slog.String("mascot_id", mascotID),
		slog.Int64("price", price))
	return mascot, nil
}

// SetActive deactivates every mascot the user owns and activates the target
// row as one transaction, keeping the single-active invariant under failure.
func (r *mascotRepository) SetActive(ctx context.Context, userID, mascotID string) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.UserMascot)(nil)).
			Where("user_id = ? AND mascot_id = ?", userID, mascotID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}

		_, err = tx.NewUpdate().
			Model((*models.UserMascot)(nil)).
			Set("is_active = FALSE").
			Set("updated_at = ?", time.Now()).
			Where("user_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return err
		}

		_, err = tx.NewUpdate().
			Model((*models.UserMascot)(nil)).
			Set("is_active = TRUE").
			Set("updated_at = ?", time.Now()).
			Where("user_id = ? AND mascot_id = ?", userID, mascotID).
			Exec(ctx)
		return err
	})
}

func (r *mascotRepository) AddExperience(ctx context.Context, userID, mascotID string, amount int64) (*models.UserMascot, error) {
	mascot := new(models.UserMascot)
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model(mascot).
			Where("user_id = ? AND mascot_id = ?", userID, mascotID).
			For("UPDATE").
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		mascot.Experience += amount
		mascot.Level = models.LevelForExperience(mascot.Experience)
		mascot.UpdatedAt = time.Now()

		_, err = tx.NewUpdate().
			Model(mascot).
			WherePK().
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mascot, nil
}
