package response

import (
	"net/http"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 错误分类约定:
// 400 参数校验失败 / 401 未登录 / 403 无权限 / 404 资源不存在
// 409 唯一性冲突（重复关注、重复点评、重复点赞、邮箱已注册） / 500 系统异常
func ErrBadRequest(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func ErrUnauthorized(msg string) *BizError {
	return NewError(http.StatusUnauthorized, msg)
}

func ErrForbidden(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

func ErrNotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

func ErrConflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}
