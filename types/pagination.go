package types

import "boxbox/pkg/response"

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	// MaxPageSize 分页上限，防止一次拉全表
	MaxPageSize = 100

	DefaultSuggestLimit = 10
	MaxSuggestLimit     = 50
)

// PageQuery 分页参数，指针区分"未传"和"显式传 0/负数"
type PageQuery struct {
	Page  *int `form:"page"`
	Limit *int `form:"limit"`
}

// Normalize 解析分页参数并返回生效值：
// 缺省回落默认值，显式非正数按参数错误拒绝，limit 截断到上限
func (q *PageQuery) Normalize() (page, limit int, err error) {
	page, limit = DefaultPage, DefaultPageSize
	if q.Page != nil {
		if *q.Page <= 0 {
			return 0, 0, response.ErrBadRequest("page 必须为正整数")
		}
		page = *q.Page
	}
	if q.Limit != nil {
		if *q.Limit <= 0 {
			return 0, 0, response.ErrBadRequest("limit 必须为正整数")
		}
		limit = *q.Limit
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit, nil
}

func Offset(page, limit int) int {
	return (page - 1) * limit
}

type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

func NewPageInfo(page, limit int, total int64) PageInfo {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return PageInfo{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1,
	}
}
