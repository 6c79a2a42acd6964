package middleware

import (
	"context"
	"net/http"
	"strings"

	"boxbox/config"
	ctxutil "boxbox/pkg/context"
	"boxbox/pkg/jwt"
	"boxbox/pkg/response"

	"github.com/gin-gonic/gin"
)

// IdentityProvider 会话解析边界
// 业务层只依赖这个抽象，不感知具体的令牌实现
type IdentityProvider interface {
	// Resolve 根据凭证解析用户身份，未认证返回 0
	Resolve(ctx context.Context, credential string) (int64, error)
}

var _ IdentityProvider = (*JwtIdentityProvider)(nil)

// JwtIdentityProvider 基于 HS256 访问令牌的身份实现
type JwtIdentityProvider struct {
	Secret []byte
}

func NewJwtIdentityProvider(secret []byte) *JwtIdentityProvider {
	return &JwtIdentityProvider{Secret: secret}
}

// NewIdentityProvider wire 装配入口
func NewIdentityProvider(cfg *config.Config) *JwtIdentityProvider {
	return NewJwtIdentityProvider([]byte(cfg.Jwt.Secret))
}

func (p *JwtIdentityProvider) Resolve(ctx context.Context, credential string) (int64, error) {
	claims, err := jwt.ParseToken(p.Secret, jwt.TypeAccess, credential)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// bearerToken 提取 Authorization 头里的凭证
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// Auth 必须登录
func Auth(provider IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "未登录")
			return
		}

		userID, err := provider.Resolve(c.Request.Context(), token)
		if err != nil || userID == 0 {
			response.Abort(c, http.StatusUnauthorized, "登录态无效")
			return
		}

		c.Set(ctxutil.CtxUserID, userID)
		c.Next()
	}
}

// OptionalAuth 可选登录，凭证有效则带上身份，无效当作游客
func OptionalAuth(provider IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			if userID, err := provider.Resolve(c.Request.Context(), token); err == nil && userID != 0 {
				c.Set(ctxutil.CtxUserID, userID)
			}
		}
		c.Next()
	}
}
