//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.mandelview -o build/android/mandelview.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Mandelview.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/mandelview/pkg/app"
	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/embedded"
)

func init() {
	embedded.Init(assetsFS, dataFS)

	data, err := embedded.ReadFile("data/viewer.yaml")
	if err != nil {
		log.Fatalf("读取默认配置失败: %v", err)
	}
	viewerCfg, err := config.ParseViewerConfig(data)
	if err != nil {
		log.Fatalf("解析默认配置失败: %v", err)
	}

	viewer, err := app.NewApp(app.Config{Verbose: true, Viewer: viewerCfg})
	if err != nil {
		log.Fatalf("查看器初始化失败: %v", err)
	}

	mobile.SetGame(viewer)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
