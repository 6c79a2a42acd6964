package context

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"boxbox/pkg/response"

	"github.com/gin-gonic/gin"
)

func serve(h func(*gin.Context) error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", Wrap(h))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	return w
}

// 业务错误的 HTTP 状态码要跟业务码一致
func TestWrap_BizError(t *testing.T) {
	for _, code := range []int{400, 401, 403, 404, 409} {
		w := serve(func(c *gin.Context) error {
			return response.NewError(code, "biz failure")
		})
		if w.Code != code {
			t.Fatalf("expected status %d, got %d", code, w.Code)
		}

		var resp response.Response
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp.Code != code {
			t.Fatalf("expected body code %d, got %d", code, resp.Code)
		}
	}
}

// 非业务错误一律 500，且不向外透出原始信息
func TestWrap_InternalError(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		return errors.New("sql: connection refused")
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Msg == "sql: connection refused" {
		t.Fatal("internal error detail should not leak to caller")
	}
}

func TestWrap_NoError(t *testing.T) {
	w := serve(func(c *gin.Context) error {
		response.Success(c, gin.H{"ok": true})
		return nil
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
