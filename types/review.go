package types

import (
	"boxbox/models"
)

type CreateReviewRequest struct {
	RaceID  int64  `json:"race_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// UpdateReviewRequest 局部更新，至少携带一个字段
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating"`
	Comment *string `json:"comment"`
}

type ListReviewQuery struct {
	RaceID int64 `form:"race_id"`
}

type ReviewListResponse struct {
	Reviews []*models.ReviewQueryResult `json:"reviews"`
}

type LikeResponse struct {
	ReviewID  int64 `json:"review_id"`
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type FeedResponse struct {
	Reviews  []*models.ReviewQueryResult `json:"reviews"`
	PageInfo PageInfo                    `json:"page_info"`
}
