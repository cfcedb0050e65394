package entities

import "time"

type PlantCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

type Plant struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"size:255" json:"title"`
	ScientificName  *string   `gorm:"size:255" json:"scientific_name"`
	CountryOfOrigin *string   `gorm:"size:255" json:"country_of_origin"`
	CategoryID      uint      `gorm:"index" json:"category_id"`
	LastUpdated     time.Time `gorm:"autoUpdateTime" json:"last_updated"`

	// Categories stay deletable only while no plant references them.
	Category PlantCategory `gorm:"constraint:OnDelete:RESTRICT" json:"category,omitempty"`
}

// FarmPlant links a farm to a plant it offers, with per-relationship
// attributes. Deleting either side deletes the association.
type FarmPlant struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FarmID      uint      `gorm:"index" json:"farm_id"`
	PlantID     uint      `gorm:"index" json:"plant_id"`
	ImageURL    *string   `gorm:"size:2000" json:"image_url"`
	Description *string   `json:"description"`
	Organic     bool      `gorm:"not null" json:"organic"`
	SeasonStart time.Time `gorm:"type:date" json:"season_start"`
	SeasonEnd   time.Time `gorm:"type:date" json:"season_end"`

	Farm  Farm  `gorm:"constraint:OnDelete:CASCADE" json:"farm,omitempty"`
	Plant Plant `gorm:"constraint:OnDelete:CASCADE" json:"plant,omitempty"`
}
