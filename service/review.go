package service

import (
	"context"
	"errors"
	"time"

	"boxbox/dao"
	"boxbox/models"
	"boxbox/pkg/response"
	"boxbox/pkg/snowflake"
	"boxbox/types"

	"gorm.io/gorm"
)

// defaultReviewNumber 预留的多点评位，目前每人每场只允许一条
const defaultReviewNumber = 1

var _ IReviewService = (*ReviewService)(nil)

type IReviewService interface {
	Create(ctx context.Context, userID int64, req *types.CreateReviewRequest) (*models.ReviewQueryResult, error)
	Update(ctx context.Context, userID, reviewID int64, req *types.UpdateReviewRequest) (*models.ReviewQueryResult, error)
	Delete(ctx context.Context, userID, reviewID int64) error
	List(ctx context.Context, viewerID, raceID int64) ([]*models.ReviewQueryResult, error)
	GetByID(ctx context.Context, viewerID, reviewID int64) (*models.ReviewQueryResult, error)
}

type ReviewService struct {
	ReviewDAO *dao.ReviewDAO
	RaceDAO   *dao.RaceDAO
}

func validateRating(rating int) error {
	if rating < models.RatingMin || rating > models.RatingMax {
		return response.ErrBadRequest("评分必须在 1-5 之间")
	}
	return nil
}

func (s *ReviewService) Create(ctx context.Context, userID int64, req *types.CreateReviewRequest) (*models.ReviewQueryResult, error) {
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}

	// 校验赛事存在
	exist, err := s.RaceDAO.IsExist(ctx, "id = ?", req.RaceID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.ErrNotFound("赛事不存在")
	}

	// 同一赛事重复点评按冲突处理
	dup, err := s.ReviewDAO.ExistsForUserRace(ctx, userID, req.RaceID, defaultReviewNumber)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, response.ErrConflict("已点评过该赛事")
	}

	now := time.Now()
	review := &models.Review{
		ID:           snowflake.GenID(),
		UserID:       userID,
		RaceID:       req.RaceID,
		Rating:       req.Rating,
		Comment:      req.Comment,
		ReviewNumber: defaultReviewNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.ReviewDAO.Create(ctx, review); err != nil {
		// 并发窗口由唯一索引兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("已点评过该赛事")
		}
		return nil, err
	}

	return s.ReviewDAO.GetWithAnnotations(ctx, review.ID, userID)
}

func (s *ReviewService) Update(ctx context.Context, userID, reviewID int64, req *types.UpdateReviewRequest) (*models.ReviewQueryResult, error) {
	if req.Rating == nil && req.Comment == nil {
		return nil, response.ErrBadRequest("至少提供一个更新字段")
	}

	review, err := s.ReviewDAO.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, response.ErrNotFound("点评不存在")
	}
	// 仅作者可修改
	if review.UserID != userID {
		return nil, response.ErrForbidden("无权修改他人点评")
	}

	updates := map[string]any{
		"updated_at": time.Now(),
	}
	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return nil, err
		}
		updates["rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comment"] = *req.Comment
	}

	if err := s.ReviewDAO.UpdateById(ctx, reviewID, updates); err != nil {
		return nil, err
	}

	return s.ReviewDAO.GetWithAnnotations(ctx, reviewID, userID)
}

func (s *ReviewService) Delete(ctx context.Context, userID, reviewID int64) error {
	review, err := s.ReviewDAO.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return response.ErrNotFound("点评不存在")
	}
	if review.UserID != userID {
		return response.ErrForbidden("无权删除他人点评")
	}

	// 点赞记录由外键级联清理
	return s.ReviewDAO.Db.WithContext(ctx).Delete(&models.Review{}, reviewID).Error
}

func (s *ReviewService) List(ctx context.Context, viewerID, raceID int64) ([]*models.ReviewQueryResult, error) {
	return s.ReviewDAO.ListWithAnnotations(ctx, raceID, viewerID)
}

func (s *ReviewService) GetByID(ctx context.Context, viewerID, reviewID int64) (*models.ReviewQueryResult, error) {
	review, err := s.ReviewDAO.GetWithAnnotations(ctx, reviewID, viewerID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, response.ErrNotFound("点评不存在")
	}
	return review, nil
}
