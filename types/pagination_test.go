package types

import (
	"errors"
	"testing"

	"boxbox/pkg/response"
)

func intPtr(v int) *int { return &v }

func badRequestCode(t *testing.T, err error) {
	t.Helper()
	var be *response.BizError
	if !errors.As(err, &be) {
		t.Fatalf("expected BizError, got %v", err)
	}
	if be.Code != 400 {
		t.Fatalf("expected code 400, got %d", be.Code)
	}
}

func TestPageQueryNormalize_Defaults(t *testing.T) {
	q := &PageQuery{}
	page, limit, err := q.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != DefaultPage || limit != DefaultPageSize {
		t.Fatalf("expected defaults %d/%d, got %d/%d", DefaultPage, DefaultPageSize, page, limit)
	}
}

func TestPageQueryNormalize_Explicit(t *testing.T) {
	q := &PageQuery{Page: intPtr(3), Limit: intPtr(50)}
	page, limit, err := q.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page != 3 || limit != 50 {
		t.Fatalf("expected 3/50, got %d/%d", page, limit)
	}
}

func TestPageQueryNormalize_LimitCapped(t *testing.T) {
	q := &PageQuery{Limit: intPtr(9999)}
	_, limit, err := q.Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != MaxPageSize {
		t.Fatalf("limit should be capped at %d, got %d", MaxPageSize, limit)
	}
}

// 显式传 0 或负数是参数错误，不能静默回落默认值
func TestPageQueryNormalize_RejectsNonPositive(t *testing.T) {
	cases := []struct {
		name  string
		query *PageQuery
	}{
		{"negative page", &PageQuery{Page: intPtr(-1)}},
		{"zero page", &PageQuery{Page: intPtr(0)}},
		{"negative limit", &PageQuery{Limit: intPtr(-5)}},
		{"zero limit", &PageQuery{Limit: intPtr(0)}},
		{"both negative", &PageQuery{Page: intPtr(-1), Limit: intPtr(-5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := tc.query.Normalize()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			badRequestCode(t, err)
		})
	}
}

func TestOffset(t *testing.T) {
	if got := Offset(3, 20); got != 40 {
		t.Fatalf("expected offset 40, got %d", got)
	}
	if got := Offset(1, 20); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
}

// 3 条记录，每页 1 条，取第 2 页：前后都有页
func TestNewPageInfo_MiddlePage(t *testing.T) {
	info := NewPageInfo(2, 1, 3)
	if info.Total != 3 {
		t.Fatalf("expected total 3, got %d", info.Total)
	}
	if info.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", info.TotalPages)
	}
	if !info.HasNext {
		t.Fatal("expected has_next true")
	}
	if !info.HasPrev {
		t.Fatal("expected has_prev true")
	}
}

func TestNewPageInfo_SinglePage(t *testing.T) {
	info := NewPageInfo(1, 20, 5)
	if info.TotalPages != 1 {
		t.Fatalf("expected 1 page, got %d", info.TotalPages)
	}
	if info.HasNext || info.HasPrev {
		t.Fatal("single page should have no next/prev")
	}
}

func TestNewPageInfo_Empty(t *testing.T) {
	info := NewPageInfo(1, 20, 0)
	if info.TotalPages != 0 {
		t.Fatalf("expected 0 pages, got %d", info.TotalPages)
	}
	if info.HasNext || info.HasPrev {
		t.Fatal("empty result should have no next/prev")
	}
}

func TestNewPageInfo_UnevenSplit(t *testing.T) {
	info := NewPageInfo(1, 20, 41)
	if info.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 41/20, got %d", info.TotalPages)
	}
}

func TestSuggestQueryNormalize(t *testing.T) {
	limit, err := (&SuggestQuery{}).Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != DefaultSuggestLimit {
		t.Fatalf("expected default %d, got %d", DefaultSuggestLimit, limit)
	}

	limit, err = (&SuggestQuery{Limit: intPtr(500)}).Normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != MaxSuggestLimit {
		t.Fatalf("expected cap %d, got %d", MaxSuggestLimit, limit)
	}

	if _, err = (&SuggestQuery{Limit: intPtr(0)}).Normalize(); err == nil {
		t.Fatal("explicit zero limit should be rejected")
	}
	if _, err = (&SuggestQuery{Limit: intPtr(-1)}).Normalize(); err == nil {
		t.Fatal("negative limit should be rejected")
	}
}
