package database

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/aabusam/UPickFront/entities"
	"github.com/aabusam/UPickFront/pkg/hours"
)

// SeedFromXLSX imports a farm-directory workbook with sheets Farms, Hours,
// Plants and FarmPlants. It is a no-op when farms already exist, so it is
// safe to leave SEED_XLSX set across restarts.
func SeedFromXLSX(db *gorm.DB, path string) error {
	var n int64
	if err := db.Model(&entities.Farm{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[seed] %d farms present, skipping %s", n, path)
		return nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	s := &seeder{db: db, farms: map[string]uint{}, plants: map[string]uint{}, cats: map[string]uint{}}
	if err := s.loadFarms(f); err != nil {
		return err
	}
	if err := s.loadHours(f); err != nil {
		return err
	}
	if err := s.loadPlants(f); err != nil {
		return err
	}
	if err := s.loadFarmPlants(f); err != nil {
		return err
	}
	log.Printf("[seed] imported %d farms, %d plants from %s", len(s.farms), len(s.plants), path)
	return nil
}

type seeder struct {
	db     *gorm.DB
	farms  map[string]uint // title -> id
	plants map[string]uint
	cats   map[string]uint
}

// sheet returns header-indexed rows; header matching tolerates case,
// spaces, dashes, underscores and a BOM.
func sheet(f *excelize.File, name string) ([]map[string]string, error) {
	rows, err := f.GetRows(name)
	if err != nil || len(rows) == 0 {
		return nil, nil // sheet optional
	}
	norm := func(s string) string {
		s = strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF"))
		s = strings.ToLower(s)
		for _, ch := range []string{" ", "-", "_"} {
			s = strings.ReplaceAll(s, ch, "")
		}
		return s
	}
	head := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		head[i] = norm(h)
	}
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := map[string]string{}
		for i, cell := range row {
			if i < len(head) && head[i] != "" {
				m[head[i]] = strings.TrimSpace(cell)
			}
		}
		if len(m) > 0 {
			out = append(out, m)
		}
	}
	return out, nil
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *seeder) loadFarms(f *excelize.File) error {
	rows, err := sheet(f, "Farms")
	if err != nil {
		return err
	}
	for _, m := range rows {
		title := m["title"]
		if title == "" {
			continue
		}
		farm := entities.Farm{
			Title:       title,
			ImageURL:    optStr(m["imageurl"]),
			Description: optStr(m["description"]),
			Phone:       optStr(m["phone"]),
			Email:       optStr(m["email"]),
			Website:     optStr(m["website"]),
		}
		if v := m["entrancefee"]; v != "" {
			fee, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("farm %q: bad entrance_fee %q", title, v)
			}
			farm.EntranceFee = &fee
		}
		lat, err1 := strconv.ParseFloat(m["lat"], 64)
		long, err2 := strconv.ParseFloat(m["long"], 64)
		if err1 != nil || err2 != nil {
			return fmt.Errorf("farm %q: bad lat/long", title)
		}
		farm.Address = &entities.Address{
			Street:  m["street"],
			City:    m["city"],
			State:   m["state"],
			Country: m["country"],
			ZipCode: m["zipcode"],
			Lat:     lat,
			Long:    long,
		}
		if err := s.db.Create(&farm).Error; err != nil {
			return err
		}
		s.farms[title] = farm.ID
	}
	return nil
}

func (s *seeder) loadHours(f *excelize.File) error {
	rows, err := sheet(f, "Hours")
	if err != nil {
		return err
	}
	for _, m := range rows {
		farmID, ok := s.farms[m["farm"]]
		if !ok {
			return fmt.Errorf("hours row: unknown farm %q", m["farm"])
		}
		day := strings.ToLower(m["day"])
		if !hours.ValidDay(day) {
			return fmt.Errorf("hours row: bad day %q", m["day"])
		}
		wh := entities.WorkingHour{Day: day, FarmID: farmID}
		if v := m["opening"]; v != "" {
			t, err := hours.Parse(v)
			if err != nil {
				return err
			}
			wh.OpeningTime = &t
		}
		if v := m["closing"]; v != "" {
			t, err := hours.Parse(v)
			if err != nil {
				return err
			}
			wh.ClosingTime = &t
		}
		if err := s.db.Create(&wh).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) loadPlants(f *excelize.File) error {
	rows, err := sheet(f, "Plants")
	if err != nil {
		return err
	}
	for _, m := range rows {
		title := m["title"]
		if title == "" {
			continue
		}
		catName := m["category"]
		catID, ok := s.cats[catName]
		if !ok {
			cat := entities.PlantCategory{Name: catName}
			if err := s.db.Create(&cat).Error; err != nil {
				return err
			}
			catID = cat.ID
			s.cats[catName] = catID
		}
		p := entities.Plant{
			Title:           title,
			ScientificName:  optStr(m["scientificname"]),
			CountryOfOrigin: optStr(m["countryoforigin"]),
			CategoryID:      catID,
		}
		if err := s.db.Create(&p).Error; err != nil {
			return err
		}
		s.plants[title] = p.ID
	}
	return nil
}

func (s *seeder) loadFarmPlants(f *excelize.File) error {
	rows, err := sheet(f, "FarmPlants")
	if err != nil {
		return err
	}
	for _, m := range rows {
		farmID, ok := s.farms[m["farm"]]
		if !ok {
			return fmt.Errorf("farmplants row: unknown farm %q", m["farm"])
		}
		plantID, ok := s.plants[m["plant"]]
		if !ok {
			return fmt.Errorf("farmplants row: unknown plant %q", m["plant"])
		}
		start, err1 := time.Parse("2006-01-02", m["seasonstart"])
		end, err2 := time.Parse("2006-01-02", m["seasonend"])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("farmplants row %q/%q: bad season dates", m["farm"], m["plant"])
		}
		fp := entities.FarmPlant{
			FarmID:      farmID,
			PlantID:     plantID,
			ImageURL:    optStr(m["imageurl"]),
			Description: optStr(m["description"]),
			Organic:     strings.EqualFold(m["organic"], "true") || m["organic"] == "1",
			SeasonStart: start,
			SeasonEnd:   end,
		}
		if err := s.db.Create(&fp).Error; err != nil {
			return err
		}
	}
	return nil
}
