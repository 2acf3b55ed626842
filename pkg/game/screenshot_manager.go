package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/mandelview/pkg/utils"
)

// ErrStorageUnavailable gdata 存储不可用（降级模式）
var ErrStorageUnavailable = errors.New("screenshot storage unavailable")

// 存储路径常量
const (
	screenshotObject = utils.StorageObject
	screenshotPrefix = "mandelview_"
)

// ScreenshotManager 截图管理器
//
// 职责：
//   - 把当前帧编码为 PNG
//   - 通过 gdata 写入用户数据目录（screenshots 对象下，每张截图一个属性）
//
// 截图只写不读，不用于恢复视图状态。
type ScreenshotManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，截图被拒绝）
	now          func() time.Time
}

// NewScreenshotManager 创建截图管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
func NewScreenshotManager(gdataManager *gdata.Manager) *ScreenshotManager {
	return &ScreenshotManager{
		gdataManager: gdataManager,
		now:          time.Now,
	}
}

// OpenScreenshotManager 打开应用的 gdata 存储并创建截图管理器
//
// 打开失败不是致命错误：返回降级模式的管理器并记录警告。
func OpenScreenshotManager(appName string) *ScreenshotManager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[ScreenshotManager] Warning: %v", err)
	}

	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[ScreenshotManager] Warning: gdata unavailable: %v (screenshots disabled)", err)
		return NewScreenshotManager(nil)
	}
	return NewScreenshotManager(manager)
}

// Available 返回截图是否可以持久化
func (sm *ScreenshotManager) Available() bool {
	return sm.gdataManager != nil
}

// Save 把图像编码为 PNG 并保存
//
// 返回：
//   - string: 保存使用的属性名
//   - error: 存储不可用、编码或写入失败时返回错误
func (sm *ScreenshotManager) Save(img image.Image) (string, error) {
	if sm.gdataManager == nil {
		return "", ErrStorageUnavailable
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}

	name := sm.nextName()
	if err := sm.gdataManager.SaveObjectProp(screenshotObject, name, buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to save screenshot: %w", err)
	}

	log.Printf("[ScreenshotManager] Screenshot saved: %s/%s (%d bytes)", screenshotObject, name, buf.Len())
	return name, nil
}

// Load 读取已保存的截图
func (sm *ScreenshotManager) Load(name string) (image.Image, error) {
	if sm.gdataManager == nil {
		return nil, ErrStorageUnavailable
	}
	if !sm.gdataManager.ObjectPropExists(screenshotObject, name) {
		return nil, fmt.Errorf("screenshot %q not found", name)
	}

	data, err := sm.gdataManager.LoadObjectProp(screenshotObject, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load screenshot: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}
	return img, nil
}

// nextName 生成不与已有截图冲突的属性名
func (sm *ScreenshotManager) nextName() string {
	base := fmt.Sprintf("%s%d", screenshotPrefix, sm.now().UnixNano())
	name := base + ".png"
	for i := 1; sm.gdataManager.ObjectPropExists(screenshotObject, name); i++ {
		name = fmt.Sprintf("%s_%d.png", base, i)
	}
	return name
}
