//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 构建前需要把根目录的着色器和默认配置复制到本目录：
//
//	mkdir -p mobile/assets mobile/data
//	cp -r assets/shaders mobile/assets/ && cp data/viewer.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed assets/shaders
var assetsFS embed.FS

//go:embed data/viewer.yaml
var dataFS embed.FS
