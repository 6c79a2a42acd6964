package models

import (
	"time"
)

// Race 赛事，参考数据，线下导入，接口侧只读
type Race struct {
	ID            int64     `gorm:"column:id;primary_key" json:"id"`
	Slug          string    `gorm:"column:slug;not null;uniqueIndex" json:"slug"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	LatestRace    bool      `gorm:"column:latest_race;not null;default:false" json:"latest_race"`
	HighlightsUrl string    `gorm:"column:highlights_url" json:"highlights_url"`
	CreatedAt     time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Race) TableName() string {
	return "races"
}
