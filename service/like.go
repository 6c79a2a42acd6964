package service

import (
	"context"
	"errors"

	"boxbox/dao"
	"boxbox/pkg/response"
	"boxbox/types"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Like(ctx context.Context, userID, reviewID int64) (*types.LikeResponse, error)
	Unlike(ctx context.Context, userID, reviewID int64) (*types.LikeResponse, error)
}

type LikeService struct {
	LikeDAO   *dao.ReviewLikeDAO
	ReviewDAO *dao.ReviewDAO
}

// Like 点赞，自己的点评也可以赞，重复点赞按冲突处理
func (s *LikeService) Like(ctx context.Context, userID, reviewID int64) (*types.LikeResponse, error) {
	review, err := s.ReviewDAO.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, response.ErrNotFound("点评不存在")
	}

	liked, err := s.LikeDAO.CheckExists(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, response.ErrConflict("已点赞该点评")
	}

	if err := s.LikeDAO.Create(ctx, userID, reviewID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("已点赞该点评")
		}
		return nil, err
	}

	return s.buildResponse(ctx, reviewID, true)
}

// Unlike 取消点赞，未点赞过返回 404
func (s *LikeService) Unlike(ctx context.Context, userID, reviewID int64) (*types.LikeResponse, error) {
	if err := s.LikeDAO.Delete(ctx, userID, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("未点赞该点评")
		}
		return nil, err
	}

	return s.buildResponse(ctx, reviewID, false)
}

// buildResponse 返回实时聚合的点赞数，不维护冗余计数
func (s *LikeService) buildResponse(ctx context.Context, reviewID int64, liked bool) (*types.LikeResponse, error) {
	count, err := s.LikeDAO.CountByReview(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	return &types.LikeResponse{
		ReviewID:  reviewID,
		Liked:     liked,
		LikeCount: count,
	}, nil
}
