package dao

import (
	"context"
	"errors"

	"boxbox/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByEmail 邮箱查询
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist 判断邮箱是否已注册
func (u *Users) IsEmailExist(ctx context.Context, email string) (bool, error) {
	return u.Repo.IsExist(ctx, "email = ?", email)
}

// GetByID 根据ID获取用户，不存在返回 nil
func (u *Users) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := u.Repo.FindById(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// IncrFollowerCount 调整粉丝数，可在事务内调用
func (u *Users) IncrFollowerCount(tx *gorm.DB, userID int64, delta int) error {
	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("follower_count", gorm.Expr("GREATEST(follower_count + ?, 0)", delta)).Error
}

// IncrFollowingCount 调整关注数，可在事务内调用
func (u *Users) IncrFollowingCount(tx *gorm.DB, userID int64, delta int) error {
	return tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("following_count", gorm.Expr("GREATEST(following_count + ?, 0)", delta)).Error
}

// DeleteWithFollowRepair 删除账号
// 关注边由外键级联删除，但对端的冗余计数要在同一事务里先行修正
func (u *Users) DeleteWithFollowRepair(ctx context.Context, userID int64) error {
	return u.Txx(ctx, func(tx *gorm.DB) error {
		// 我关注的人，粉丝数各减一
		if err := tx.Model(&models.User{}).
			Where("id IN (?)", tx.Model(&models.UserFollow{}).
				Select("following_id").Where("user_id = ?", userID)).
			Update("follower_count", gorm.Expr("GREATEST(follower_count - 1, 0)")).Error; err != nil {
			return err
		}
		// 关注我的人，关注数各减一
		if err := tx.Model(&models.User{}).
			Where("id IN (?)", tx.Model(&models.UserFollow{}).
				Select("user_id").Where("following_id = ?", userID)).
			Update("following_count", gorm.Expr("GREATEST(following_count - 1, 0)")).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
