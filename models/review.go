package models

import (
	"time"
)

type Review struct {
	ID           int64     `gorm:"column:id;primary_key" json:"id"`
	UserID       int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_race_number" json:"user_id"`
	RaceID       int64     `gorm:"column:race_id;not null;uniqueIndex:idx_user_race_number" json:"race_id"`
	Rating       int       `gorm:"column:rating;not null" json:"rating"`   // 1-5 星
	Comment      string    `gorm:"column:comment;type:text" json:"comment"`
	ReviewNumber int       `gorm:"column:review_number;not null;default:1;uniqueIndex:idx_user_race_number" json:"review_number"` // 预留的多点评位，目前固定为 1
	CreatedAt    time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Race *Race `gorm:"foreignKey:RaceID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}

const (
	RatingMin = 1
	RatingMax = 5
)

// ReviewQueryResult 点评列表联查结果（作者信息 + 点赞聚合）
type ReviewQueryResult struct {
	ID            int64     `gorm:"column:id" json:"id"`
	UserID        int64     `gorm:"column:user_id" json:"user_id"`
	UserName      string    `gorm:"column:user_name" json:"user_name"`
	UserImage     string    `gorm:"column:user_image" json:"user_image"`
	RaceID        int64     `gorm:"column:race_id" json:"race_id"`
	RaceSlug      string    `gorm:"column:race_slug" json:"race_slug"`
	RaceName      string    `gorm:"column:race_name" json:"race_name"`
	Rating        int       `gorm:"column:rating" json:"rating"`
	Comment       string    `gorm:"column:comment" json:"comment"`
	LikeCount     int64     `gorm:"column:like_count" json:"like_count"`
	IsLikedByUser bool      `gorm:"column:is_liked_by_user" json:"is_liked_by_user"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}
