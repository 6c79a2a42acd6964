package dao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"boxbox/models"
	"boxbox/pkg/snowflake"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 集成用例需要真实 MySQL，通过环境变量传入 DSN，未设置时跳过
func newIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("BOXBOX_MYSQL_DSN")
	if dsn == "" {
		t.Skip("BOXBOX_MYSQL_DSN not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.UserFollow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{
		ID:        snowflake.GenUserID(),
		Name:      name,
		Email:     fmt.Sprintf("%s-%d@test.local", name, snowflake.GenID()),
		Password:  "x",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		db.Where("user_id = ? OR following_id = ?", user.ID, user.ID).Delete(&models.UserFollow{})
		db.Delete(&models.User{}, user.ID)
	})
	return user
}

// 并发重复关注：唯一索引保证只落一条边，两端计数各只加一次
func TestCreateWithCounters_Concurrent(t *testing.T) {
	db := newIntegrationDB(t)
	d := NewUserFollowDAO(db)
	ctx := context.Background()

	follower := createTestUser(t, db, "follower")
	target := createTestUser(t, db, "target")

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = d.CreateWithCounters(ctx, follower.ID, target.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for i, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, gorm.ErrDuplicatedKey):
		default:
			t.Fatalf("worker %d: unexpected error: %v", i, err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly 1 successful follow, got %d", succeeded)
	}

	var edges int64
	if err := db.Model(&models.UserFollow{}).
		Where("user_id = ? AND following_id = ?", follower.ID, target.ID).
		Count(&edges).Error; err != nil {
		t.Fatalf("count edges: %v", err)
	}
	if edges != 1 {
		t.Fatalf("expected 1 edge, got %d", edges)
	}

	var got models.User
	if err := db.First(&got, target.ID).Error; err != nil {
		t.Fatalf("reload target: %v", err)
	}
	if got.FollowerCount != 1 {
		t.Fatalf("expected follower_count 1, got %d", got.FollowerCount)
	}
	if err := db.First(&got, follower.ID).Error; err != nil {
		t.Fatalf("reload follower: %v", err)
	}
	if got.FollowingCount != 1 {
		t.Fatalf("expected following_count 1, got %d", got.FollowingCount)
	}
}

// 解除关注后计数回落，再次解除返回未关注
func TestDeleteWithCounters_Roundtrip(t *testing.T) {
	db := newIntegrationDB(t)
	d := NewUserFollowDAO(db)
	ctx := context.Background()

	follower := createTestUser(t, db, "unfollower")
	target := createTestUser(t, db, "untarget")

	if err := d.CreateWithCounters(ctx, follower.ID, target.ID); err != nil {
		t.Fatalf("follow: %v", err)
	}
	if err := d.DeleteWithCounters(ctx, follower.ID, target.ID); err != nil {
		t.Fatalf("unfollow: %v", err)
	}

	var got models.User
	if err := db.First(&got, target.ID).Error; err != nil {
		t.Fatalf("reload target: %v", err)
	}
	if got.FollowerCount != 0 {
		t.Fatalf("expected follower_count 0, got %d", got.FollowerCount)
	}

	err := d.DeleteWithCounters(ctx, follower.ID, target.ID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
