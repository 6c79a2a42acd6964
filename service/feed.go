package service

import (
	"context"

	"boxbox/dao"
	"boxbox/types"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	GetFollowingFeed(ctx context.Context, viewerID int64, query *types.PageQuery) (*types.FeedResponse, error)
	GetSuggestedUsers(ctx context.Context, viewerID int64, query *types.SuggestQuery) (*types.SuggestedUsersResponse, error)
}

type FeedService struct {
	ReviewDAO *dao.ReviewDAO
}

// GetFollowingFeed 关注动态流，时间倒序分页
func (s *FeedService) GetFollowingFeed(ctx context.Context, viewerID int64, query *types.PageQuery) (*types.FeedResponse, error) {
	page, limit, err := query.Normalize()
	if err != nil {
		return nil, err
	}

	feed, total, err := s.ReviewDAO.GetFollowingFeed(ctx, viewerID, limit, types.Offset(page, limit))
	if err != nil {
		return nil, err
	}

	return &types.FeedResponse{
		Reviews:  feed,
		PageInfo: types.NewPageInfo(page, limit, total),
	}, nil
}

// GetSuggestedUsers 推荐关注，活跃点评人优先
func (s *FeedService) GetSuggestedUsers(ctx context.Context, viewerID int64, query *types.SuggestQuery) (*types.SuggestedUsersResponse, error) {
	limit, err := query.Normalize()
	if err != nil {
		return nil, err
	}

	users, err := s.ReviewDAO.GetSuggestedUsers(ctx, viewerID, limit)
	if err != nil {
		return nil, err
	}

	return &types.SuggestedUsersResponse{Users: users}, nil
}
