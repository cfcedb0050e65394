package views

import (
	"time"

	"github.com/aabusam/UPickFront/entities"
)

const dateLayout = "2006-01-02"

type CategoryView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// FarmPlantRow is a farm-plant association with the linked plant flattened
// into it, as embedded in a farm detail response. plant_farm stays empty
// there; the plant-centric endpoint uses PlantFarmView instead.
type FarmPlantRow struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Category        CategoryView `json:"category"`
	ImageURL        *string      `json:"image_url"`
	Description     *string      `json:"description"`
	SeasonStart     string       `json:"season_start"`
	SeasonEnd       string       `json:"season_end"`
	Organic         bool         `json:"organic"`
	ScientificName  *string      `json:"scientific_name"`
	CountryOfOrigin *string      `json:"country_of_origin"`
	PlantFarm       struct{}     `json:"plant_farm"`
}

// PlantFarmView is the plant-centric shape: same flattened plant fields,
// plus the associated farm in list shape under plant_farm.
type PlantFarmView struct {
	ID              uint         `json:"id"`
	Title           string       `json:"title"`
	Category        CategoryView `json:"category"`
	ImageURL        *string      `json:"image_url"`
	Description     *string      `json:"description"`
	SeasonStart     string       `json:"season_start"`
	SeasonEnd       string       `json:"season_end"`
	Organic         bool         `json:"organic"`
	ScientificName  *string      `json:"scientific_name"`
	CountryOfOrigin *string      `json:"country_of_origin"`
	PlantFarm       FarmView     `json:"plant_farm"`
}

func farmPlantRow(fp *entities.FarmPlant) FarmPlantRow {
	return FarmPlantRow{
		ID:              fp.ID,
		Title:           fp.Plant.Title,
		Category:        CategoryView{ID: fp.Plant.Category.ID, Name: fp.Plant.Category.Name},
		ImageURL:        fp.ImageURL,
		Description:     fp.Description,
		SeasonStart:     fp.SeasonStart.Format(dateLayout),
		SeasonEnd:       fp.SeasonEnd.Format(dateLayout),
		Organic:         fp.Organic,
		ScientificName:  fp.Plant.ScientificName,
		CountryOfOrigin: fp.Plant.CountryOfOrigin,
	}
}

// PlantFarm shapes a farm-plant association for the plant-centric listing.
func PlantFarm(fp *entities.FarmPlant, ref time.Time) PlantFarmView {
	row := farmPlantRow(fp)
	return PlantFarmView{
		ID:              row.ID,
		Title:           row.Title,
		Category:        row.Category,
		ImageURL:        row.ImageURL,
		Description:     row.Description,
		SeasonStart:     row.SeasonStart,
		SeasonEnd:       row.SeasonEnd,
		Organic:         row.Organic,
		ScientificName:  row.ScientificName,
		CountryOfOrigin: row.CountryOfOrigin,
		PlantFarm:       Farm(&fp.Farm, ModeList, ref),
	}
}
