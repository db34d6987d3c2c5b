package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PointsPerLevel is the points-to-level divisor: level = points/50 + 1.
const PointsPerLevel = 50

type Account struct {
	bun.BaseModel `bun:"table:accounts,alias:a"`

	UserID    string    `bun:"user_id,pk"`
	Points    int64     `bun:"points,notnull,default:0"`
	Level     int       `bun:"level,notnull,default:1"`
	LastLogin time.Time `bun:"last_login,nullzero"`

	// Per-action completion tracking: date string for daily actions, count
	// for once-only and repeatable ones.
	CompletedActions map[string]ActionProgress `bun:"completed_actions,type:jsonb"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

type ActionProgress struct {
	LastDate string `json:"last_date,omitempty"`
	Count    int    `json:"count"`
}

// LevelForPoints derives the account level from a balance.
func LevelForPoints(points int64) int {
	if points < 0 {
		points = 0
	}
	return int(points/PointsPerLevel) + 1
}
