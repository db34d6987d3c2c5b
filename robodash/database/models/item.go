package models

import (
	"time"

	"github.com/uptrace/bun"
)

// MaxEquippedPerMascot caps equipment assignments per mascot.
const MaxEquippedPerMascot = 3

// UserItem is a concrete owned copy of an item template, minted with a
// globally unique instance id at acquisition time.
type UserItem struct {
	bun.BaseModel `bun:"table:user_items,alias:ui"`

	InstanceID string    `bun:"instance_id,pk"`
	TemplateID string    `bun:"template_id,notnull"`
	UserID     string    `bun:"user_id,notnull"`
	ObtainedAt time.Time `bun:"obtained_at,notnull,default:current_timestamp"`
}

// Equipment assigns an owned item instance to one of the user's mascots.
// At most one row per (user_id, instance_id); at most MaxEquippedPerMascot
// rows per (user_id, mascot_id).
type Equipment struct {
	bun.BaseModel `bun:"table:equipment,alias:eq"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     string    `bun:"user_id,notnull"`
	MascotID   string    `bun:"mascot_id,notnull"`
	InstanceID string    `bun:"instance_id,notnull"`
	EquippedAt time.Time `bun:"equipped_at,notnull,default:current_timestamp"`
}
