package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager
func createTestGdataManager(t *testing.T, testName string) *gdata.Manager {
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	appName := fmt.Sprintf("mandelview_test_%s_%d", testName, time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(filepath.Join(tempDir, ".local", "share", appName))
	})

	return manager
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 80), B: 200, A: 255})
		}
	}
	return img
}

// TestScreenshotSaveLoad 测试截图保存后可以按名称读回
func TestScreenshotSaveLoad(t *testing.T) {
	sm := NewScreenshotManager(createTestGdataManager(t, "save_load"))
	if !sm.Available() {
		t.Fatal("Available() should be true with a gdata manager")
	}

	img := testImage()
	name, err := sm.Save(img)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !strings.HasPrefix(name, "mandelview_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("unexpected screenshot name %q", name)
	}

	loaded, err := sm.Load(name)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Bounds() != img.Bounds() {
		t.Fatalf("bounds: got %v, want %v", loaded.Bounds(), img.Bounds())
	}
	r1, g1, b1, _ := loaded.At(3, 2).RGBA()
	r2, g2, b2, _ := img.At(3, 2).RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("pixel (3,2) mismatch: got (%d,%d,%d), want (%d,%d,%d)", r1, g1, b1, r2, g2, b2)
	}
}

// TestScreenshotUniqueNames 测试同一时刻的截图不会互相覆盖
func TestScreenshotUniqueNames(t *testing.T) {
	sm := NewScreenshotManager(createTestGdataManager(t, "unique"))
	fixed := time.Unix(1700000000, 0)
	sm.now = func() time.Time { return fixed }

	first, err := sm.Save(testImage())
	if err != nil {
		t.Fatalf("first Save() error: %v", err)
	}
	second, err := sm.Save(testImage())
	if err != nil {
		t.Fatalf("second Save() error: %v", err)
	}
	if first == second {
		t.Errorf("screenshots share a name: %q", first)
	}
}

// TestScreenshotNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestScreenshotNilGdata(t *testing.T) {
	sm := NewScreenshotManager(nil)
	if sm.Available() {
		t.Error("Available() should be false in degraded mode")
	}

	if _, err := sm.Save(testImage()); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Save() error: got %v, want ErrStorageUnavailable", err)
	}
	if _, err := sm.Load("anything.png"); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Load() error: got %v, want ErrStorageUnavailable", err)
	}
}

func TestScreenshotLoadMissing(t *testing.T) {
	sm := NewScreenshotManager(createTestGdataManager(t, "missing"))
	if _, err := sm.Load("mandelview_0.png"); err == nil {
		t.Error("Load() of missing screenshot should fail")
	}
}
