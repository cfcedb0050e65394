package entities

import (
	"time"

	"github.com/aabusam/UPickFront/pkg/hours"
)

type Farm struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255" json:"title"`
	ImageURL    *string   `gorm:"size:2000" json:"image_url"`
	Description *string   `json:"description"`
	EntranceFee *float64  `gorm:"type:decimal(6,2)" json:"entrance_fee"` // NULL means free
	Phone       *string   `gorm:"size:255" json:"phone"`
	Email       *string   `gorm:"size:255;uniqueIndex" json:"email"`
	Website     *string   `gorm:"size:2000" json:"website"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`

	Address      *Address      `gorm:"constraint:OnDelete:CASCADE" json:"address,omitempty"`
	WorkingHours []WorkingHour `gorm:"constraint:OnDelete:CASCADE" json:"working_hours,omitempty"`
	Plants       []FarmPlant   `gorm:"constraint:OnDelete:CASCADE" json:"plants,omitempty"`
}

type Address struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Street  string  `gorm:"size:100" json:"street"`
	City    string  `gorm:"size:100" json:"city"`
	State   string  `gorm:"size:100" json:"state"`
	Country string  `gorm:"size:100" json:"country"`
	ZipCode string  `gorm:"size:10" json:"zip_code"`
	Lat     float64 `gorm:"not null" json:"lat"`
	Long    float64 `gorm:"not null" json:"long"`
	FarmID  uint    `gorm:"uniqueIndex" json:"farm_id"` // one address per farm
}

// WorkingHour is one (day, open, close) record for a farm. Farms may carry
// more than one entry per day; no uniqueness is enforced.
type WorkingHour struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Day         string           `gorm:"size:3;index" json:"day"` // mon..sun
	OpeningTime *hours.TimeOfDay `gorm:"size:5" json:"opening_time"`
	ClosingTime *hours.TimeOfDay `gorm:"size:5" json:"closing_time"`
	FarmID      uint             `gorm:"index" json:"farm_id"`
}
