package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	path := writeTempConfig(t, `
app:
  env: test
  debug: true
server:
  http: 8080
cors:
  origins:
    - http://localhost:3000
`)
	conf := New(path)
	if !conf.Debug() {
		t.Fatal("expected debug mode")
	}
	if conf.Server.Http != 8080 {
		t.Fatalf("expected port 8080, got %d", conf.Server.Http)
	}
	if len(conf.Cors.Origins) != 1 {
		t.Fatalf("expected 1 origin, got %d", len(conf.Cors.Origins))
	}
}

// 解析失败的 panic 信息要带上真实的解析错误，不能带一个空 err
func TestNew_InvalidYaml(t *testing.T) {
	path := writeTempConfig(t, "- this\n- is\n- a list\n")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on invalid yaml")
		}
		msg, ok := r.(string)
		if !ok {
			t.Fatalf("expected string panic, got %T", r)
		}
		if !strings.Contains(msg, path) {
			t.Fatalf("panic message should name the file: %s", msg)
		}
		if strings.Contains(msg, "<nil>") {
			t.Fatalf("panic message lost the parse error: %s", msg)
		}
	}()

	New(path)
}
