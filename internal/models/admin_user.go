package models

import (
	"database/sql"
	"time"
)

// AdminUser is an operator of the admin console.
type AdminUser struct {
	ID           int          `db:"id" json:"id"`
	Email        string       `db:"email" json:"email"`
	PasswordHash string       `db:"password_hash" json:"-"`
	Name         string       `db:"name" json:"name"`
	IsActive     bool         `db:"is_active" json:"isActive"`
	LastLoginAt  sql.NullTime `db:"last_login_at" json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updatedAt"`
}
