package dao

import (
	"context"
	"errors"

	"boxbox/models"

	"gorm.io/gorm"
)

type ReviewDAO struct {
	Repo[models.Review]
}

func NewReviewDAO(db *gorm.DB) *ReviewDAO {
	return &ReviewDAO{Repo: NewRepo[models.Review](db)}
}

// GetByID 根据ID获取点评，不存在返回 nil
func (d *ReviewDAO) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	review, err := d.FindById(ctx, reviewID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}

// ExistsForUserRace 用户对该赛事是否已有点评
func (d *ReviewDAO) ExistsForUserRace(ctx context.Context, userID, raceID int64, reviewNumber int) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND race_id = ? AND review_number = ?", userID, raceID, reviewNumber)
}

// annotatedQuery 点评联查基础语句：作者、赛事、点赞聚合
// LEFT JOIN 保证零点赞的点评不丢，COUNT(DISTINCT) 保证每个赞只计一次
func (d *ReviewDAO) annotatedQuery(ctx context.Context, viewerID int64) *gorm.DB {
	return d.Db.WithContext(ctx).
		Table("reviews r").
		Select(`r.id, r.user_id, u.name AS user_name, u.image AS user_image,
			r.race_id, ra.slug AS race_slug, ra.name AS race_name,
			r.rating, r.comment, r.created_at, r.updated_at,
			COUNT(DISTINCT rl.id) AS like_count,
			MAX(CASE WHEN rl.user_id = ? THEN 1 ELSE 0 END) = 1 AS is_liked_by_user`, viewerID).
		Joins("INNER JOIN users u ON u.id = r.user_id").
		Joins("INNER JOIN races ra ON ra.id = r.race_id").
		Joins("LEFT JOIN review_likes rl ON rl.review_id = r.id").
		Group("r.id, r.user_id, u.name, u.image, r.race_id, ra.slug, ra.name, r.rating, r.comment, r.created_at, r.updated_at")
}

// ListWithAnnotations 点评列表，raceID 为 0 时不过滤赛事，viewerID 为 0 时 is_liked_by_user 恒为 false
func (d *ReviewDAO) ListWithAnnotations(ctx context.Context, raceID, viewerID int64) ([]*models.ReviewQueryResult, error) {
	query := d.annotatedQuery(ctx, viewerID)
	if raceID > 0 {
		query = query.Where("r.race_id = ?", raceID)
	}

	var reviews []*models.ReviewQueryResult
	err := query.Order("r.created_at DESC").Scan(&reviews).Error
	return reviews, err
}

// GetWithAnnotations 单条点评联查，不存在返回 nil
func (d *ReviewDAO) GetWithAnnotations(ctx context.Context, reviewID, viewerID int64) (*models.ReviewQueryResult, error) {
	var review models.ReviewQueryResult
	err := d.annotatedQuery(ctx, viewerID).
		Where("r.id = ?", reviewID).
		Scan(&review).Error
	if err != nil {
		return nil, err
	}
	if review.ID == 0 {
		return nil, nil
	}
	return &review, nil
}

// GetFollowingFeed 关注动态流
// 只取被关注用户的点评，按发表时间倒序；计数语句镜像同样的联接条件
func (d *ReviewDAO) GetFollowingFeed(ctx context.Context, viewerID int64, limit, offset int) ([]*models.ReviewQueryResult, int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).
		Table("reviews r").
		Joins("INNER JOIN user_follows f ON f.following_id = r.user_id AND f.user_id = ?", viewerID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var feed []*models.ReviewQueryResult
	err = d.annotatedQuery(ctx, viewerID).
		Joins("INNER JOIN user_follows f ON f.following_id = r.user_id AND f.user_id = ?", viewerID).
		Order("r.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&feed).Error

	return feed, total, err
}

// GetSuggestedUsers 推荐关注
// 候选为写过点评的用户，排除自己和已关注的人，
// 按 (点评数, 最近点评时间) 倒序，u.id 升序兜底保证确定性
func (d *ReviewDAO) GetSuggestedUsers(ctx context.Context, viewerID int64, limit int) ([]*models.SuggestedUserQueryResult, error) {
	var users []*models.SuggestedUserQueryResult
	err := d.Db.WithContext(ctx).
		Table("users u").
		Select(`u.id AS user_id, u.name, u.image,
			COUNT(r.id) AS review_count,
			MAX(r.created_at) AS last_review_at`).
		Joins("INNER JOIN reviews r ON r.user_id = u.id").
		Joins("LEFT JOIN user_follows f ON f.following_id = u.id AND f.user_id = ?", viewerID).
		Where("u.id <> ? AND f.id IS NULL", viewerID).
		Group("u.id, u.name, u.image").
		Order("review_count DESC, last_review_at DESC, u.id ASC").
		Limit(limit).
		Scan(&users).Error
	return users, err
}
