// Package views holds the projection structs returned by the read API.
// Shaping is a pure projection over preloaded entities; it never touches
// the store and never mutates its input.
package views

import (
	"time"

	"github.com/aabusam/UPickFront/entities"
	"github.com/aabusam/UPickFront/pkg/hours"
)

// Mode selects the farm response shape.
type Mode int

const (
	ModeList   Mode = iota // today-only hours, empty farm_plants
	ModeDetail             // full week of hours, flattened farm_plants
)

type GeoLocation struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type AddressView struct {
	Street      string      `json:"street"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Country     string      `json:"country"`
	ZipCode     string      `json:"zip_code"`
	GeoLocation GeoLocation `json:"geo_location"`
}

type HourEntry struct {
	Day         string           `json:"day"`
	OpeningTime *hours.TimeOfDay `json:"opening_time"`
	ClosingTime *hours.TimeOfDay `json:"closing_time"`
	IsOpen      *bool            `json:"is_open"`
}

type FarmView struct {
	ID           uint           `json:"id"`
	ImageURL     *string        `json:"image_url"`
	Title        string         `json:"title"`
	WorkingHours []HourEntry    `json:"working_hours"`
	Description  *string        `json:"description"`
	Address      *AddressView   `json:"address"`
	EntranceFee  *float64       `json:"entrance_fee"`
	Phone        *string        `json:"phone"`
	Email        *string        `json:"email"`
	Website      *string        `json:"website"`
	FarmPlants   []FarmPlantRow `json:"farm_plants"`
}

// Farm shapes f for the given mode at the reference instant ref.
func Farm(f *entities.Farm, mode Mode, ref time.Time) FarmView {
	v := FarmView{
		ID:           f.ID,
		ImageURL:     f.ImageURL,
		Title:        f.Title,
		WorkingHours: hourEntries(f.WorkingHours, mode, ref),
		Description:  f.Description,
		Address:      addressView(f.Address),
		EntranceFee:  f.EntranceFee,
		Phone:        f.Phone,
		Email:        f.Email,
		Website:      f.Website,
		FarmPlants:   []FarmPlantRow{},
	}
	if mode == ModeDetail {
		for i := range f.Plants {
			v.FarmPlants = append(v.FarmPlants, farmPlantRow(&f.Plants[i]))
		}
	}
	return v
}

// hourEntries drops non-today entries in list mode and annotates each
// remaining entry with its open flag. Entries for other days carry a null
// flag in detail mode.
func hourEntries(whs []entities.WorkingHour, mode Mode, ref time.Time) []HourEntry {
	today := hours.DayCode(ref)
	out := make([]HourEntry, 0, len(whs))
	for _, wh := range whs {
		sameDay := wh.Day == today
		if mode == ModeList && !sameDay {
			continue
		}
		var flag *bool
		if sameDay {
			flag = hours.Status(wh.OpeningTime, wh.ClosingTime, ref).Flag()
		}
		out = append(out, HourEntry{
			Day:         wh.Day,
			OpeningTime: wh.OpeningTime,
			ClosingTime: wh.ClosingTime,
			IsOpen:      flag,
		})
	}
	return out
}

func addressView(a *entities.Address) *AddressView {
	if a == nil {
		return nil
	}
	return &AddressView{
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		Country:     a.Country,
		ZipCode:     a.ZipCode,
		GeoLocation: GeoLocation{Lat: a.Lat, Long: a.Long},
	}
}
