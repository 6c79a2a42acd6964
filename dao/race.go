package dao

import (
	"context"
	"errors"

	"boxbox/models"

	"gorm.io/gorm"
)

type RaceDAO struct {
	Repo[models.Race]
}

func NewRaceDAO(db *gorm.DB) *RaceDAO {
	return &RaceDAO{Repo: NewRepo[models.Race](db)}
}

// ListAll 赛事列表，最新场次排最前，其余按创建时间倒序
func (d *RaceDAO) ListAll(ctx context.Context) ([]*models.Race, error) {
	var races []*models.Race
	err := d.Db.WithContext(ctx).
		Order("latest_race DESC, created_at DESC").
		Find(&races).Error
	return races, err
}

// FindBySlug 根据 slug 查询，不存在返回 nil
func (d *RaceDAO) FindBySlug(ctx context.Context, slug string) (*models.Race, error) {
	var race models.Race
	err := d.Db.WithContext(ctx).Where("slug = ?", slug).First(&race).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &race, nil
}
