package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"boxbox/pkg/response"
	"boxbox/types"
)

func bizCode(t *testing.T, err error) int {
	t.Helper()
	var be *response.BizError
	if !errors.As(err, &be) {
		t.Fatalf("expected BizError, got %T: %v", err, err)
	}
	return be.Code
}

// 关注自己必须在任何写入前被拒绝
func TestFollow_SelfFollow(t *testing.T) {
	s := &FollowService{}
	err := s.Follow(context.Background(), 7, 7)
	if err == nil {
		t.Fatal("expected error for self follow")
	}
	if code := bizCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestValidateRating(t *testing.T) {
	for _, rating := range []int{1, 2, 3, 4, 5} {
		if err := validateRating(rating); err != nil {
			t.Fatalf("rating %d should be valid: %v", rating, err)
		}
	}
	for _, rating := range []int{0, -1, 6, 100} {
		err := validateRating(rating)
		if err == nil {
			t.Fatalf("rating %d should be invalid", rating)
		}
		if code := bizCode(t, err); code != http.StatusBadRequest {
			t.Fatalf("expected 400 for rating %d, got %d", rating, code)
		}
	}
}

// 越界评分在任何数据库访问前被拒绝
func TestReviewCreate_InvalidRating(t *testing.T) {
	s := &ReviewService{}
	_, err := s.Create(context.Background(), 1, &types.CreateReviewRequest{
		RaceID: 1,
		Rating: 6,
	})
	if err == nil {
		t.Fatal("expected error for rating out of range")
	}
	if code := bizCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

// 显式非正分页参数在任何数据库访问前被拒绝
func TestFeed_NonPositivePagination(t *testing.T) {
	s := &FeedService{}
	badPage := -1
	_, err := s.GetFollowingFeed(context.Background(), 1, &types.PageQuery{Page: &badPage})
	if err == nil {
		t.Fatal("expected error for negative page")
	}
	if code := bizCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}

	zeroLimit := 0
	_, err = s.GetFollowingFeed(context.Background(), 1, &types.PageQuery{Limit: &zeroLimit})
	if err == nil {
		t.Fatal("expected error for zero limit")
	}
	if code := bizCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

// 空更新请求直接拒绝
func TestReviewUpdate_NoFields(t *testing.T) {
	s := &ReviewService{}
	_, err := s.Update(context.Background(), 1, 1, &types.UpdateReviewRequest{})
	if err == nil {
		t.Fatal("expected error for empty update")
	}
	if code := bizCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}
