package embedded

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() (fstest.MapFS, fstest.MapFS) {
	assets := fstest.MapFS{
		"assets/shaders/mandelbrot.kage": {Data: []byte("package main\n")},
	}
	data := fstest.MapFS{
		"data/viewer.yaml": {Data: []byte("view:\n  maxIter: 2000\n")},
	}
	return assets, data
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	// 重置状态以避免影响其他测试
	initialized = false
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	initialized = false

	_, err := ReadFile("assets/shaders/mandelbrot.kage")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/viewer.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

// TestReadFileByPrefix 测试按路径前缀选择文件系统
func TestReadFileByPrefix(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"assets/shaders/mandelbrot.kage", "package main\n", false},
		{"./data/viewer.yaml", "view:\n  maxIter: 2000\n", false},
		{"data/missing.yaml", "", true},
		{"shaders/mandelbrot.kage", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("content: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnknownPrefix(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	_, err := ReadFile("config/viewer.yaml")
	if err == nil || !strings.Contains(err.Error(), "unknown resource path prefix") {
		t.Errorf("expected unknown prefix error, got %v", err)
	}
}

func TestExists(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	if !Exists("data/viewer.yaml") {
		t.Error("data/viewer.yaml should exist")
	}
	if Exists("assets/shaders/julia.kage") {
		t.Error("assets/shaders/julia.kage should not exist")
	}
}
