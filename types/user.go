package types

import (
	"time"

	"boxbox/models"
	"boxbox/pkg/response"
)

// UserProfile 用户主页
// Email 仅本人可见，IsFollowing 仅在查看他人主页时有意义
type UserProfile struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Image          string    `json:"image"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowing    *bool     `json:"is_following,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type FollowListResponse struct {
	Users    []*models.FollowUserQueryResult `json:"users"`
	PageInfo PageInfo                        `json:"page_info"`
}

type SuggestedUsersResponse struct {
	Users []*models.SuggestedUserQueryResult `json:"users"`
}

type SuggestQuery struct {
	Limit *int `form:"limit"`
}

// Normalize 解析推荐人数：缺省回落默认值，显式非正数按参数错误拒绝
func (q *SuggestQuery) Normalize() (int, error) {
	limit := DefaultSuggestLimit
	if q.Limit != nil {
		if *q.Limit <= 0 {
			return 0, response.ErrBadRequest("limit 必须为正整数")
		}
		limit = *q.Limit
	}
	if limit > MaxSuggestLimit {
		limit = MaxSuggestLimit
	}
	return limit, nil
}
