package model

import "time"

// BreweryModel mirrors the 'breweries' table. Uniqueness on lower(name) lives
// in a migration-managed expression index.
type BreweryModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BreweryModel) TableName() string {
	return "breweries"
}

// BeerModel mirrors the 'beers' table. Uniqueness on (lower(name), brewery_id)
// lives in a migration-managed expression index.
type BeerModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:text;not null"`
	BreweryID int64  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BeerModel) TableName() string {
	return "beers"
}
