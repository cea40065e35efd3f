// Package model holds the GORM persistence models mirroring the Postgres
// schema in migrations/.
package model

import "time"

// PersonModel mirrors the 'people' table.
type PersonModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "people"
}

// IdentityModel mirrors the 'identities' table. Identifier carries a unique
// constraint so a first-login race resolves to exactly one identity.
type IdentityModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Identifier string `gorm:"type:text;not null;unique"`
	PersonID   int64  `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// SessionModel mirrors the 'sessions' table. The primary key is the opaque
// bearer token itself.
type SessionModel struct {
	ID        string `gorm:"type:text;primaryKey"`
	PersonID  int64  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
