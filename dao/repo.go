package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各实体 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Model(ctx context.Context) *gorm.DB {
	var value T
	return r.Db.WithContext(ctx).Model(&value)
}

func (r Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var value T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&value).Error
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var value T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&value).Error
	if err != nil {
		return nil, err
	}
	return &value, nil
}

func (r Repo[T]) FindAll(ctx context.Context, where string, args ...any) ([]*T, error) {
	var values []*T
	db := r.Db.WithContext(ctx)
	if where != "" {
		db = db.Where(where, args...)
	}
	err := db.Find(&values).Error
	return values, err
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r Repo[T]) UpdateById(ctx context.Context, id any, data map[string]any) error {
	var value T
	return r.Db.WithContext(ctx).Model(&value).Where("id = ?", id).Updates(data).Error
}

// Txx 事务封装
func (r Repo[T]) Txx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.Db.WithContext(ctx).Transaction(fn)
}
