package dao

import (
	"time"

	"boxbox/models"
	"boxbox/pkg/snowflake"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

type ReviewLikeDAO struct {
	Repo[models.ReviewLike]
}

func NewReviewLikeDAO(db *gorm.DB) *ReviewLikeDAO {
	return &ReviewLikeDAO{
		Repo: NewRepo[models.ReviewLike](db),
	}
}

// Create 创建点赞记录，重复点赞由唯一索引兜底
func (d *ReviewLikeDAO) Create(ctx context.Context, userID, reviewID int64) error {
	like := models.ReviewLike{
		ID:        snowflake.GenID(),
		UserID:    userID,
		ReviewID:  reviewID,
		CreatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).Create(&like).Error
}

// Delete 删除点赞记录，不存在返回 gorm.ErrRecordNotFound
func (d *ReviewLikeDAO) Delete(ctx context.Context, userID, reviewID int64) error {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND review_id = ?", userID, reviewID).
		Delete(&models.ReviewLike{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CheckExists 检查是否已点赞
func (d *ReviewLikeDAO) CheckExists(ctx context.Context, userID, reviewID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND review_id = ?", userID, reviewID)
}

// CountByReview 点赞数实时聚合，不落冗余计数
func (d *ReviewLikeDAO) CountByReview(ctx context.Context, reviewID int64) (int64, error) {
	var count int64
	err := d.Model(ctx).Where("review_id = ?", reviewID).Count(&count).Error
	return count, err
}
