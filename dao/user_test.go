package dao

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errConnBroken = errors.New("connection broken")

// brokenDriver 建连成功但任何语句都失败，模拟数据库瞬断
type brokenDriver struct{}

func (brokenDriver) Open(string) (driver.Conn, error) { return brokenConn{}, nil }

type brokenConn struct{}

func (brokenConn) Prepare(string) (driver.Stmt, error) { return nil, errConnBroken }
func (brokenConn) Close() error                        { return nil }
func (brokenConn) Begin() (driver.Tx, error)           { return nil, errConnBroken }

func init() {
	sql.Register("broken", brokenDriver{})
}

func newBrokenDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("broken", "")
	if err != nil {
		t.Fatalf("sql open: %v", err)
	}
	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		TranslateError:       true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return db
}

// 存储层故障必须上抛，不能把错误静默当作"邮箱未注册"
func TestUsersIsEmailExist_StoreError(t *testing.T) {
	users := NewUsers(newBrokenDB(t))

	exist, err := users.IsEmailExist(context.Background(), "driver@example.com")
	if err == nil {
		t.Fatal("expected store error, got nil")
	}
	if exist {
		t.Fatal("exist must be false when the query fails")
	}
}

func TestUsersGetByID_StoreError(t *testing.T) {
	users := NewUsers(newBrokenDB(t))

	user, err := users.GetByID(context.Background(), 1)
	if err == nil {
		t.Fatal("expected store error, got nil")
	}
	if user != nil {
		t.Fatal("user must be nil when the query fails")
	}
}
