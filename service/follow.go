package service

import (
	"context"
	"errors"

	"boxbox/dao"
	"boxbox/pkg/response"
	"boxbox/types"

	"gorm.io/gorm"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Follow(ctx context.Context, followerID, followingID int64) error
	Unfollow(ctx context.Context, followerID, followingID int64) error
	IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error)
	GetFollowerList(ctx context.Context, userID int64, query *types.PageQuery) (*types.FollowListResponse, error)
	GetFollowingList(ctx context.Context, userID int64, query *types.PageQuery) (*types.FollowListResponse, error)
}

type FollowService struct {
	FollowDAO *dao.UserFollowDAO
	UserDAO   *dao.Users
}

func (s *FollowService) Follow(ctx context.Context, followerID, followingID int64) error {
	// 不能关注自己
	if followerID == followingID {
		return response.ErrBadRequest("不能关注自己")
	}

	// 校验被关注用户是否存在
	user, err := s.UserDAO.GetByID(ctx, followingID)
	if err != nil {
		return err
	}
	if user == nil {
		return response.ErrNotFound("用户不存在")
	}

	// 重复关注按冲突处理，不静默吞掉
	isFollowing, err := s.FollowDAO.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if isFollowing {
		return response.ErrConflict("已关注该用户")
	}

	// 插边 + 双端计数同一事务，唯一索引兜底并发窗口
	if err := s.FollowDAO.CreateWithCounters(ctx, followerID, followingID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.ErrConflict("已关注该用户")
		}
		return err
	}

	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID int64) error {
	if err := s.FollowDAO.DeleteWithCounters(ctx, followerID, followingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.ErrNotFound("未关注该用户")
		}
		return err
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, followerID, followingID int64) (bool, error) {
	return s.FollowDAO.IsFollowing(ctx, followerID, followingID)
}

func (s *FollowService) GetFollowerList(ctx context.Context, userID int64, query *types.PageQuery) (*types.FollowListResponse, error) {
	if err := s.checkUserExist(ctx, userID); err != nil {
		return nil, err
	}

	page, limit, err := query.Normalize()
	if err != nil {
		return nil, err
	}

	followers, total, err := s.FollowDAO.GetFollowerList(ctx, userID, limit, types.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	return &types.FollowListResponse{
		Users:    followers,
		PageInfo: types.NewPageInfo(page, limit, total),
	}, nil
}

func (s *FollowService) GetFollowingList(ctx context.Context, userID int64, query *types.PageQuery) (*types.FollowListResponse, error) {
	if err := s.checkUserExist(ctx, userID); err != nil {
		return nil, err
	}

	page, limit, err := query.Normalize()
	if err != nil {
		return nil, err
	}

	following, total, err := s.FollowDAO.GetFollowingList(ctx, userID, limit, types.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	return &types.FollowListResponse{
		Users:    following,
		PageInfo: types.NewPageInfo(page, limit, total),
	}, nil
}

func (s *FollowService) checkUserExist(ctx context.Context, userID int64) error {
	user, err := s.UserDAO.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return response.ErrNotFound("用户不存在")
	}
	return nil
}
