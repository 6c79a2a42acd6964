package models

import (
	"time"
)

type ReviewLike struct {
	ID        int64     `gorm:"column:id;primary_key" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_review" json:"user_id"`
	ReviewID  int64     `gorm:"column:review_id;not null;uniqueIndex:idx_user_review" json:"review_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Review *Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ReviewLike) TableName() string {
	return "review_likes"
}
