package account

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("account not found")
	ErrDuplicate = errors.New("duplicate account name")
)

type Account struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	AccountID string `gorm:"column:account_id;type:char(32);not null;uniqueIndex:ux_accounts_account_id_active" json:"id"`
	// Display name, unique among non-deleted rows. name_key holds the lowered
	// name so the unique index matches the case-insensitive guard.
	Name       string         `gorm:"column:name;size:255;not null" json:"name"`
	NameKey    string         `gorm:"column:name_key;size:255;not null;uniqueIndex:ux_accounts_name_active" json:"-"`
	Identifier string         `gorm:"column:identifier;size:64" json:"identifier,omitempty"`
	Industry   string         `gorm:"column:industry;size:128" json:"industry,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Account) TableName() string { return "accounts" }
