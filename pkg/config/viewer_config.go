package config

import (
	"fmt"
	"os"

	"github.com/decker502/mandelview/pkg/types"
	"gopkg.in/yaml.v3"
)

// MaxIterCap 着色器循环的编译期上限
// Kage 要求循环次数为常量，MaxIter 超过此值时会被截断，因此配置校验时直接拒绝
const MaxIterCap = 8192

// ViewerConfig 查看器配置
//
// 配置文件位置: data/viewer.yaml（内嵌默认值），可通过 --config 指定磁盘文件覆盖。
// 文件中缺省的字段保持 DefaultViewerConfig() 的默认值。
type ViewerConfig struct {
	Window     WindowConfig     `yaml:"window"`
	View       ViewConfig       `yaml:"view"`
	Navigation NavigationConfig `yaml:"navigation"`
	AutoPath   AutoPathConfig   `yaml:"autoPath"`
	Keys       KeyBindings      `yaml:"keys"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	HUD        HUDConfig        `yaml:"hud"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // 每秒更新次数，导航规则按帧计算
}

// ViewConfig 视图初始值，也是重置命令恢复的快照
type ViewConfig struct {
	Center       types.Point `yaml:"center"`
	Scale        float64     `yaml:"scale"`
	MaxIter      int         `yaml:"maxIter"`
	ZoomModifier float64     `yaml:"zoomModifier"` // 同时作为缩放速度的下限
}

// NavigationConfig 导航参数（均为每帧/每次事件的常量）
type NavigationConfig struct {
	// PanStep 方向键每帧平移距离，乘以当前 scale
	PanStep float64 `yaml:"panStep"`
	// ZoomStep 每格滚轮的缩放比例，乘以 zoomModifier
	ZoomStep float64 `yaml:"zoomStep"`
	// ZoomModifierStep 加速/减速命令的固定增量
	ZoomModifierStep float64 `yaml:"zoomModifierStep"`
	// ZoomModifierDecay 每帧衰减系数，必须在 (0,1) 内
	ZoomModifierDecay float64 `yaml:"zoomModifierDecay"`
}

// AutoPathConfig 自动路径参数
type AutoPathConfig struct {
	StartCenter  types.Point `yaml:"startCenter"`
	StartScale   float64     `yaml:"startScale"`
	MaxZoomLevel int         `yaml:"maxZoomLevel"`
	ZoomFactor   float64     `yaml:"zoomFactor"`
}

// TerminalConfig 终端后端配置
type TerminalConfig struct {
	// KeyHoldMs 终端没有按键松开事件，超过该时长未收到重复按键即视为松开
	KeyHoldMs int `yaml:"keyHoldMs"`
	// CellAspect 字符单元格的高宽比
	CellAspect float64 `yaml:"cellAspect"`
}

// HUDConfig 状态叠加层配置
type HUDConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DefaultViewerConfig 返回默认配置
func DefaultViewerConfig() *ViewerConfig {
	return &ViewerConfig{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Mandelbrot Viewer",
			TPS:    60,
		},
		View: ViewConfig{
			Center:       types.Point{X: 0, Y: 0},
			Scale:        1.0,
			MaxIter:      2000,
			ZoomModifier: 0.05,
		},
		Navigation: NavigationConfig{
			PanStep:           0.01,
			ZoomStep:          0.1,
			ZoomModifierStep:  0.01,
			ZoomModifierDecay: 0.99,
		},
		AutoPath: AutoPathConfig{
			StartCenter:  types.Point{X: 0, Y: 0},
			StartScale:   1.0,
			MaxZoomLevel: 10,
			ZoomFactor:   0.95,
		},
		Keys: DefaultKeyBindings(),
		Terminal: TerminalConfig{
			KeyHoldMs:  250,
			CellAspect: 2.0,
		},
		HUD: HUDConfig{
			Enabled: false,
		},
	}
}

// ParseViewerConfig 解析 YAML 配置内容
//
// 解析结果叠加在默认配置之上，然后校验。
//
// 参数:
//   - data: YAML 内容
//
// 返回:
//   - *ViewerConfig: 校验通过的配置
//   - error: 解析或校验失败时返回错误
func ParseViewerConfig(data []byte) (*ViewerConfig, error) {
	cfg := DefaultViewerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse viewer config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid viewer config: %w", err)
	}

	return cfg, nil
}

// LoadViewerConfig 从磁盘加载配置文件
func LoadViewerConfig(path string) (*ViewerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read viewer config: %w", err)
	}
	return ParseViewerConfig(data)
}

// Validate 验证配置有效性
//
// 检查项：
//   - 窗口尺寸和 TPS 为正
//   - 初始 scale、zoomModifier 为正，maxIter 在 (0, MaxIterCap] 内
//   - 衰减系数在 (0,1) 内，单格滚轮缩放不会让 scale 变号
//   - 自动路径的缩放系数为正，maxZoomLevel 至少为 1
//   - 键位绑定完整且不冲突
func (c *ViewerConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}

	if c.View.Scale <= 0 {
		return fmt.Errorf("view scale must be > 0, got %g", c.View.Scale)
	}
	if c.View.MaxIter <= 0 || c.View.MaxIter > MaxIterCap {
		return fmt.Errorf("view maxIter must be in (0, %d], got %d", MaxIterCap, c.View.MaxIter)
	}
	if c.View.ZoomModifier <= 0 {
		return fmt.Errorf("view zoomModifier must be > 0, got %g", c.View.ZoomModifier)
	}

	n := c.Navigation
	if n.PanStep <= 0 {
		return fmt.Errorf("navigation panStep must be > 0, got %g", n.PanStep)
	}
	if n.ZoomStep <= 0 {
		return fmt.Errorf("navigation zoomStep must be > 0, got %g", n.ZoomStep)
	}
	if n.ZoomStep*c.View.ZoomModifier >= 1 {
		return fmt.Errorf("navigation zoomStep*zoomModifier must be < 1, got %g", n.ZoomStep*c.View.ZoomModifier)
	}
	if n.ZoomModifierStep <= 0 {
		return fmt.Errorf("navigation zoomModifierStep must be > 0, got %g", n.ZoomModifierStep)
	}
	if n.ZoomModifierDecay <= 0 || n.ZoomModifierDecay >= 1 {
		return fmt.Errorf("navigation zoomModifierDecay must be in (0,1), got %g", n.ZoomModifierDecay)
	}

	if c.AutoPath.StartScale <= 0 {
		return fmt.Errorf("autoPath startScale must be > 0, got %g", c.AutoPath.StartScale)
	}
	if c.AutoPath.ZoomFactor <= 0 {
		return fmt.Errorf("autoPath zoomFactor must be > 0, got %g", c.AutoPath.ZoomFactor)
	}
	if c.AutoPath.MaxZoomLevel < 1 {
		return fmt.Errorf("autoPath maxZoomLevel must be >= 1, got %d", c.AutoPath.MaxZoomLevel)
	}

	if c.Terminal.KeyHoldMs <= 0 {
		return fmt.Errorf("terminal keyHoldMs must be > 0, got %d", c.Terminal.KeyHoldMs)
	}
	if c.Terminal.CellAspect <= 0 {
		return fmt.Errorf("terminal cellAspect must be > 0, got %g", c.Terminal.CellAspect)
	}

	return c.Keys.Validate()
}
