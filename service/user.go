package service

import (
	"context"

	"boxbox/dao"
	"boxbox/pkg/response"
	"boxbox/types"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, viewerID, targetID int64) (*types.UserProfile, error)
	DeleteAccount(ctx context.Context, viewerID, targetID int64) error
}

type UserService struct {
	UserDAO   *dao.Users
	FollowDAO *dao.UserFollowDAO
}

// GetProfile 用户主页，邮箱仅本人可见，查看他人时附带关注状态
func (s *UserService) GetProfile(ctx context.Context, viewerID, targetID int64) (*types.UserProfile, error) {
	user, err := s.UserDAO.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, response.ErrNotFound("用户不存在")
	}

	profile := &types.UserProfile{
		ID:             user.ID,
		Name:           user.Name,
		Image:          user.Image,
		FollowerCount:  user.FollowerCount,
		FollowingCount: user.FollowingCount,
		CreatedAt:      user.CreatedAt,
	}

	if viewerID == targetID {
		profile.Email = user.Email
	} else {
		isFollowing, err := s.FollowDAO.IsFollowing(ctx, viewerID, targetID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = &isFollowing
	}

	return profile, nil
}

// DeleteAccount 注销账号，仅本人可操作
// 行数据靠外键级联清理，对端冗余计数在同一事务里修正
func (s *UserService) DeleteAccount(ctx context.Context, viewerID, targetID int64) error {
	if viewerID != targetID {
		return response.ErrForbidden("只能注销自己的账号")
	}

	user, err := s.UserDAO.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil {
		return response.ErrNotFound("用户不存在")
	}

	return s.UserDAO.DeleteWithFollowRepair(ctx, targetID)
}
