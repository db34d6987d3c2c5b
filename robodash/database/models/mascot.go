package models

import (
	"time"

	"github.com/uptrace/bun"
)

// ExperiencePerLevel is the mascot XP-to-level divisor: level = exp/100 + 1.
const ExperiencePerLevel = 100

// UserMascot is an ownership record for a mascot template. At most one row
// per (user_id, mascot_id); at most one active row per user.
type UserMascot struct {
	bun.BaseModel `bun:"table:user_mascots,alias:um"`

	ID           int64     `bun:"id,pk,autoincrement"`
	UserID       string    `bun:"user_id,notnull"`
	MascotID     string    `bun:"mascot_id,notnull"`
	PurchaseDate time.Time `bun:"purchase_date,notnull,default:current_timestamp"`
	Experience   int64     `bun:"experience,notnull,default:0"`
	Level        int       `bun:"level,notnull,default:1"`
	IsActive     bool      `bun:"is_active,notnull,default:false"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// LevelForExperience derives a mascot's level from its experience.
func LevelForExperience(exp int64) int {
	if exp < 0 {
		exp = 0
	}
	return int(exp/ExperiencePerLevel) + 1
}
