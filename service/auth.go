package service

import (
	"context"
	"errors"
	"time"

	"boxbox/config"
	"boxbox/dao"
	"boxbox/dao/cache"
	"boxbox/models"
	"boxbox/pkg/encrypt"
	"boxbox/pkg/jwt"
	"boxbox/pkg/response"
	"boxbox/pkg/snowflake"
	"boxbox/types"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	Logout(ctx context.Context, userID int64) error
}

type AuthService struct {
	Config         *config.Config
	UserDAO        *dao.Users
	SessionStorage *cache.SessionStorage
}

// Register 注册账号，邮箱唯一
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*types.AuthResponse, error) {
	exist, err := s.UserDAO.IsEmailExist(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, response.ErrConflict("邮箱已注册")
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        snowflake.GenUserID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("邮箱已注册")
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Login 登录，签发访问/刷新令牌
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	user, err := s.UserDAO.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrUnauthorized("邮箱或密码错误")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, response.ErrUnauthorized("邮箱或密码错误")
	}

	return s.issueTokens(ctx, user)
}

// Refresh 刷新访问令牌，要求刷新令牌与 redis 会话一致
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	claims, err := jwt.ParseToken([]byte(s.Config.Jwt.Secret), jwt.TypeRefresh, refreshToken)
	if err != nil {
		return nil, response.ErrUnauthorized("刷新令牌无效")
	}

	stored, err := s.SessionStorage.Get(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != refreshToken {
		return nil, response.ErrUnauthorized("会话已失效，请重新登录")
	}

	accessToken, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		claims.UserID,
		jwt.TypeAccess,
		time.Duration(s.Config.Jwt.AccessExpire)*time.Second,
	)
	if err != nil {
		return nil, err
	}

	return &types.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout 登出，删除 redis 会话
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.SessionStorage.Del(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*types.AuthResponse, error) {
	secret := []byte(s.Config.Jwt.Secret)

	accessToken, err := jwt.GenerateToken(secret, user.ID, jwt.TypeAccess,
		time.Duration(s.Config.Jwt.AccessExpire)*time.Second)
	if err != nil {
		return nil, err
	}

	refreshExpire := time.Duration(s.Config.Jwt.RefreshExpire) * time.Second
	refreshToken, err := jwt.GenerateToken(secret, user.ID, jwt.TypeRefresh, refreshExpire)
	if err != nil {
		return nil, err
	}

	if err := s.SessionStorage.Set(ctx, user.ID, refreshToken, refreshExpire); err != nil {
		return nil, err
	}

	return &types.AuthResponse{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		TokenPair: types.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}
