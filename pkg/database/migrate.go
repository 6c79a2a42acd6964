package database

import (
	"boxbox/models"
	"boxbox/pkg/log"
	"boxbox/pkg/snowflake"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migrate 建表并导入赛事目录
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Race{},
		&models.Review{},
		&models.ReviewLike{},
		&models.UserFollow{},
	)
	if err != nil {
		return err
	}
	return seedRaces(db)
}

type raceSeed struct {
	slug       string
	name       string
	latestRace bool
}

// 2024 赛季目录，线下维护
var raceSeeds = []raceSeed{
	{"bahrain-2024", "Bahrain Grand Prix", false},
	{"saudi-arabia-2024", "Saudi Arabian Grand Prix", false},
	{"australia-2024", "Australian Grand Prix", false},
	{"japan-2024", "Japanese Grand Prix", false},
	{"china-2024", "Chinese Grand Prix", false},
	{"miami-2024", "Miami Grand Prix", false},
	{"emilia-romagna-2024", "Emilia Romagna Grand Prix", false},
	{"monaco-2024", "Monaco Grand Prix", false},
	{"canada-2024", "Canadian Grand Prix", false},
	{"spain-2024", "Spanish Grand Prix", false},
	{"austria-2024", "Austrian Grand Prix", false},
	{"great-britain-2024", "British Grand Prix", false},
	{"hungary-2024", "Hungarian Grand Prix", false},
	{"belgium-2024", "Belgian Grand Prix", false},
	{"netherlands-2024", "Dutch Grand Prix", false},
	{"italy-2024", "Italian Grand Prix", false},
	{"azerbaijan-2024", "Azerbaijan Grand Prix", false},
	{"singapore-2024", "Singapore Grand Prix", false},
	{"united-states-2024", "United States Grand Prix", false},
	{"mexico-2024", "Mexico City Grand Prix", false},
	{"brazil-2024", "São Paulo Grand Prix", false},
	{"las-vegas-2024", "Las Vegas Grand Prix", false},
	{"qatar-2024", "Qatar Grand Prix", false},
	{"abu-dhabi-2024", "Abu Dhabi Grand Prix", true},
}

// seedRaces 按 slug 幂等导入，已存在的跳过
func seedRaces(db *gorm.DB) error {
	races := make([]*models.Race, 0, len(raceSeeds))
	for _, seed := range raceSeeds {
		races = append(races, &models.Race{
			ID:         snowflake.GenID(),
			Slug:       seed.slug,
			Name:       seed.name,
			LatestRace: seed.latestRace,
		})
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoNothing: true,
	}).Create(&races).Error
	if err != nil {
		return err
	}

	log.L.Info("race catalog seeded", zap.Int("count", len(races)))
	return nil
}
