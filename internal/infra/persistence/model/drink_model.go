package model

import "time"

// DrinkModel mirrors the 'drinks' table.
type DrinkModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PersonID  int64     `gorm:"not null"`
	DrankOn   time.Time `gorm:"type:date;not null"`
	BeerID    int64     `gorm:"not null"`
	Rating    int16     `gorm:"not null"`
	Comment   *string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DrinkModel) TableName() string {
	return "drinks"
}

// ExpandedDrinkRow is the scan target for the drink read model join.
type ExpandedDrinkRow struct {
	ID      int64
	DrankOn time.Time
	Name    string
	Brewery string
	Rating  int16
	Comment *string
}

// BeerSearchRow is the scan target for ranked beer searches.
type BeerSearchRow struct {
	ID      int64
	Name    string
	Brewery string
	Rank    float32
}

// BrewerySearchRow is the scan target for ranked brewery searches.
type BrewerySearchRow struct {
	ID   int64
	Name string
	Rank float32
}
