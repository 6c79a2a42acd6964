package dao

import (
	"context"
	"time"

	"boxbox/models"
	"boxbox/pkg/snowflake"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
}

func NewUserFollowDAO(db *gorm.DB) *UserFollowDAO {
	return &UserFollowDAO{
		Repo: NewRepo[models.UserFollow](db),
	}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND following_id = ?", followerID, followingID)
}

// CreateWithCounters 建立关注关系
// 插边和两端计数必须同一事务落库，唯一索引兜底并发重复关注，
// 冲突时原样抛出 gorm.ErrDuplicatedKey 由业务层翻译
func (d *UserFollowDAO) CreateWithCounters(ctx context.Context, followerID, followingID int64) error {
	return d.Txx(ctx, func(tx *gorm.DB) error {
		follow := models.UserFollow{
			ID:          snowflake.GenID(),
			UserID:      followerID,
			FollowingID: followingID,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&follow).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", followerID).
			Update("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", followingID).
			Update("follower_count", gorm.Expr("follower_count + 1")).Error
	})
}

// DeleteWithCounters 解除关注关系，镜像 CreateWithCounters
// 边不存在返回 gorm.ErrRecordNotFound，计数不动
func (d *UserFollowDAO) DeleteWithCounters(ctx context.Context, followerID, followingID int64) error {
	return d.Txx(ctx, func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND following_id = ?", followerID, followingID).
			Delete(&models.UserFollow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", followerID).
			Update("following_count", gorm.Expr("GREATEST(following_count - 1, 0)")).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", followingID).
			Update("follower_count", gorm.Expr("GREATEST(follower_count - 1, 0)")).Error
	})
}

// GetFollowerList 粉丝列表（按关注时间倒序）
func (d *UserFollowDAO) GetFollowerList(ctx context.Context, userID int64, limit, offset int) ([]*models.FollowUserQueryResult, int64, error) {
	var total int64
	err := d.Model(ctx).Where("following_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var followers []*models.FollowUserQueryResult
	err = d.Db.WithContext(ctx).
		Table("user_follows uf").
		Select("u.id AS user_id, u.name, u.image, uf.created_at AS followed_at").
		Joins("INNER JOIN users u ON uf.user_id = u.id").
		Where("uf.following_id = ?", userID).
		Order("uf.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&followers).Error

	return followers, total, err
}

// GetFollowingList 关注列表（按关注时间倒序）
func (d *UserFollowDAO) GetFollowingList(ctx context.Context, userID int64, limit, offset int) ([]*models.FollowUserQueryResult, int64, error) {
	var total int64
	err := d.Model(ctx).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var following []*models.FollowUserQueryResult
	err = d.Db.WithContext(ctx).
		Table("user_follows uf").
		Select("u.id AS user_id, u.name, u.image, uf.created_at AS followed_at").
		Joins("INNER JOIN users u ON uf.following_id = u.id").
		Where("uf.user_id = ?", userID).
		Order("uf.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&following).Error

	return following, total, err
}
