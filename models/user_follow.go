package models

import (
	"time"
)

// UserFollow 关注关系，user_id 关注 following_id
type UserFollow struct {
	ID          int64     `gorm:"column:id;primary_key" json:"id"`
	UserID      int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_following" json:"user_id"`
	FollowingID int64     `gorm:"column:following_id;not null;uniqueIndex:idx_user_following" json:"following_id"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`

	User      *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Following *User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}

// FollowUserQueryResult 关注/粉丝列表联查结果
type FollowUserQueryResult struct {
	UserID     int64     `gorm:"column:user_id" json:"user_id"`
	Name       string    `gorm:"column:name" json:"name"`
	Image      string    `gorm:"column:image" json:"image"`
	FollowedAt time.Time `gorm:"column:followed_at" json:"followed_at"` // 关注关系建立时间
}

// SuggestedUserQueryResult 推荐用户联查结果
type SuggestedUserQueryResult struct {
	UserID       int64     `gorm:"column:user_id" json:"user_id"`
	Name         string    `gorm:"column:name" json:"name"`
	Image        string    `gorm:"column:image" json:"image"`
	ReviewCount  int64     `gorm:"column:review_count" json:"review_count"`
	LastReviewAt time.Time `gorm:"column:last_review_at" json:"last_review_at"`
}
