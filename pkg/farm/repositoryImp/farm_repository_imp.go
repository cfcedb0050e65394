package repositoryImp

import (
	"github.com/aabusam/UPickFront/entities"
	"github.com/aabusam/UPickFront/pkg/farm/repository"
	"github.com/aabusam/UPickFront/pkg/hours"
	"gorm.io/gorm"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) List(q repository.Query, offset, limit int) ([]entities.Farm, int64, error) {
	tx := r.db.Model(&entities.Farm{})

	if q.Box != nil {
		tx = tx.Where(
			"farms.id IN (SELECT farm_id FROM addresses WHERE lat BETWEEN ? AND ? AND long BETWEEN ? AND ?)",
			q.Box.LatMin, q.Box.LatMax, q.Box.LonMin, q.Box.LonMax,
		)
	}
	if q.IsOpen != nil {
		day := hours.DayCode(q.Now)
		now := string(hours.Clock(q.Now))
		if *q.IsOpen {
			tx = tx.Where(
				"EXISTS (SELECT 1 FROM working_hours wh WHERE wh.farm_id = farms.id AND wh.day = ? AND wh.opening_time <= ? AND wh.closing_time >= ?)",
				day, now, now,
			)
		} else {
			// a same-day entry that does NOT cover now; entries with a
			// NULL bound match neither branch
			tx = tx.Where(
				"EXISTS (SELECT 1 FROM working_hours wh WHERE wh.farm_id = farms.id AND wh.day = ? AND (wh.opening_time > ? OR wh.closing_time < ?))",
				day, now, now,
			)
		}
	}
	tx = tx.Where("COALESCE(farms.entrance_fee, 0) BETWEEN ? AND ?", q.FeeMin, q.FeeMax)

	// reuse the filter chain for both Count and Find
	tx = tx.Session(&gorm.Session{})

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var farms []entities.Farm
	err := tx.Preload("Address").Preload("WorkingHours").
		Order("farms.id").Offset(offset).Limit(limit).
		Find(&farms).Error
	if err != nil {
		return nil, 0, err
	}
	return farms, count, nil
}

func (r *farmRepo) FindByID(id uint) (*entities.Farm, error) {
	var f entities.Farm
	err := r.db.Preload("Address").Preload("WorkingHours").
		Preload("Plants").Preload("Plants.Plant").Preload("Plants.Plant.Category").
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}
