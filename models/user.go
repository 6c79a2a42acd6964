package models

import (
	"time"
)

type User struct {
	ID             int64     `gorm:"column:id;primary_key" json:"id"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	Email          string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Password       string    `gorm:"column:password;not null" json:"-"`
	Image          string    `gorm:"column:image" json:"image"`
	FollowerCount  int64     `gorm:"column:follower_count;not null;default:0" json:"follower_count"`   // 粉丝数（冗余计数）
	FollowingCount int64     `gorm:"column:following_count;not null;default:0" json:"following_count"` // 关注数（冗余计数）
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
