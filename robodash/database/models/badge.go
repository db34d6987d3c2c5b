package models

import (
	"time"

	"github.com/uptrace/bun"
)

// UserBadge is an award record. At most one row per (user_id, badge_id).
type UserBadge struct {
	bun.BaseModel `bun:"table:user_badges,alias:ub"`

	ID          int64     `bun:"id,pk,autoincrement"`
	UserID      string    `bun:"user_id,notnull"`
	BadgeID     string    `bun:"badge_id,notnull"`
	DateAwarded time.Time `bun:"date_awarded,notnull,default:current_timestamp"`
}
