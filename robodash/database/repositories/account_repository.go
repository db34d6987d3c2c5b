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

type AccountRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*models.Account, error)
	Get(ctx context.Context, userID string) (*models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Debit(ctx context.Context, userID string, amount int64) (*models.Account, error)
}

type accountRepository struct {
	db *bun.DB
}

func NewAccountRepository(db *bun.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, userID string) (*models.Account, error) {
	account := new(models.Account)
	err := r.db.NewSelect().
		Model(account).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		slog.Error("Failed to load account",
			slog.String("type", "db"),
			slog.String("user_id", userID),
			slog.Any("error", err))
		return nil, err
	}
	return account, nil
}

func (r *accountRepository) GetOrCreate(ctx context.Context, userID string) (*models.Account, error) {
	account, err := r.Get(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	account = &models.Account{
		UserID:           userID,
		Points:           0,
		Level:            1,
		CompletedActions: map[string]models.ActionProgress{},
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	_, err = r.db.NewInsert().
		Model(account).
		On("CONFLICT (user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	// Another caller may have won the insert race; read back the row.
	return r.Get(ctx, userID)
}

func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	account.Level = models.LevelForPoints(account.Points)
	account.UpdatedAt = time.Now()
	_, err := r.db.NewUpdate().
		Model(account).
		WherePK().
		Exec(ctx)
	return err
}

// Debit is an atomic floor-checked decrement. It fails with
// ErrInsufficientPoints instead of driving the balance negative.
func (r *accountRepository) Debit(ctx context.Context, userID string, amount int64) (*models.Account, error) {
	res, err := r.db.NewUpdate().
		Model((*models.Account)(nil)).
		Set("points = points - ?", amount).
		Set("level = (points - ?) / ? + 1", amount, models.PointsPerLevel).
		Set("updated_at = ?", time.Now()).
		Where("user_id = ? AND points >= ?", userID, amount).
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrInsufficientPoints
	}
	return r.Get(ctx, userID)
}
