package repositoryImp

import (
	"github.com/aabusam/UPickFront/entities"
	"github.com/aabusam/UPickFront/pkg/plant/repository"
	"gorm.io/gorm"
)

type farmPlantRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmPlantRepository { return &farmPlantRepo{db} }

func (r *farmPlantRepo) List(q repository.Query, offset, limit int) ([]entities.FarmPlant, int64, error) {
	tx := r.db.Model(&entities.FarmPlant{})

	if q.FarmID != nil {
		tx = tx.Where("farm_plants.farm_id = ?", *q.FarmID)
	}
	if q.PlantID != nil {
		tx = tx.Where("farm_plants.plant_id = ?", *q.PlantID)
	}
	if q.CategoryID != nil {
		tx = tx.Where("farm_plants.plant_id IN (SELECT id FROM plants WHERE category_id = ?)", *q.CategoryID)
	}

	// reuse the filter chain for both Count and Find
	tx = tx.Session(&gorm.Session{})

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var fps []entities.FarmPlant
	err := tx.Preload("Plant").Preload("Plant.Category").
		Preload("Farm").Preload("Farm.Address").Preload("Farm.WorkingHours").
		Order("farm_plants.id").Offset(offset).Limit(limit).
		Find(&fps).Error
	if err != nil {
		return nil, 0, err
	}
	return fps, count, nil
}
