//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 截图目录存在并可写
// gdata 在 Android 上以 /data/data/{package}/ 为根目录，但不会预先创建
// 对象子目录，需要在打开 gdata 之前调用。
//
// 返回：
//   - error: 如果创建目录失败返回错误
func EnsureStorageDir() error {
	// 检测 Android 应用包名
	app, err := detectAndroidApp()
	if err != nil {
		return fmt.Errorf("failed to detect Android app: %w", err)
	}

	dir := filepath.Join("/data/data", app, StorageObject)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("test"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	os.Remove(probe)

	return nil
}

// detectAndroidApp 检测 Android 应用包名
// 从 /proc/self/cmdline 读取应用标识符
func detectAndroidApp() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	result := cleanCmdline(data)
	if result == "" {
		return "", fmt.Errorf("got empty output from /proc/self/cmdline")
	}

	return result, nil
}

// GetStoragePath 获取 Android 存储路径（用于调试）
func GetStoragePath() string {
	app, err := detectAndroidApp()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", app)
}
