// Package app 提供 ebiten 后端的应用包装器
//
// 该包把帧循环拆成 ebiten 的 Update/Draw 回调：
// Update 轮询输入并推进 NavigationSystem，Draw 用 Kage 着色器绘制当前视图。
package app

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/embedded"
	"github.com/decker502/mandelview/pkg/game"
	"github.com/decker502/mandelview/pkg/systems"
	"github.com/decker502/mandelview/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AppName gdata 存储使用的应用名
const AppName = "mandelview"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Fullscreen 启动时全屏
	Fullscreen bool
	// Viewer 已校验的查看器配置
	Viewer *config.ViewerConfig
}

// App 是 ebiten 后端的应用包装器，实现 ebiten.Game 接口
type App struct {
	cfg *config.ViewerConfig

	view       *game.ViewState
	navigation *systems.NavigationSystem
	input      *systems.InputSystem
	renderer   *systems.FractalRenderSystem
	hud        *systems.HUDSystem

	screenshots       *game.ScreenshotManager
	pendingScreenshot bool

	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// ConfigureLogging 根据 verbose 开关配置日志输出
func ConfigureLogging(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if cfg.Viewer == nil {
		return nil, fmt.Errorf("viewer config is required")
	}

	src, err := embedded.ReadFile(systems.FractalShaderPath)
	if err != nil {
		return nil, fmt.Errorf("着色器加载失败: %w", err)
	}

	renderer, err := systems.NewFractalRenderSystem(src)
	if err != nil {
		return nil, err
	}

	a := newApp(cfg.Viewer, renderer, game.OpenScreenshotManager(AppName))
	log.Printf("[App] Initialized: %dx%d, maxIter=%d", cfg.Viewer.Window.Width, cfg.Viewer.Window.Height, cfg.Viewer.View.MaxIter)
	return a, nil
}

// newApp 组装各个系统（不涉及 GPU 资源，便于测试）
func newApp(cfg *config.ViewerConfig, renderer *systems.FractalRenderSystem, screenshots *game.ScreenshotManager) *App {
	initial := game.InitialViewState(cfg.View)
	view := game.NewViewState(initial)
	cursor := game.NewAutoPathCursorFromConfig(cfg.AutoPath)

	a := &App{
		cfg:         cfg,
		view:        view,
		navigation:  systems.NewNavigationSystem(view, cursor, initial, cfg.Navigation),
		input:       systems.NewInputSystem(cfg.Keys),
		renderer:    renderer,
		hud:         systems.NewHUDSystem(cfg.HUD.Enabled),
		screenshots: screenshots,
		width:       cfg.Window.Width,
		height:      cfg.Window.Height,
	}
	a.navigation.SetViewport(a.width, a.height)
	return a
}

// Run 设置窗口并启动 ebiten 帧循环，阻塞直到退出
func Run(cfg Config) error {
	ConfigureLogging(cfg.Verbose)

	a, err := NewApp(cfg)
	if err != nil {
		return err
	}

	w := cfg.Viewer.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(w.TPS)
	ebiten.SetFullscreen(cfg.Fullscreen)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	log.Printf("[App] Exited")
	return nil
}

// Update 更新视图状态
// 每个 tick 调用一次
func (a *App) Update() error {
	// 移动端没有窗口和功能键
	if !utils.IsMobile() {
		a.handleWindowCommands()
	}

	events, pointer := a.input.Poll()
	a.navigation.SetViewport(a.width, a.height)
	if !a.navigation.Update(events, pointer) {
		return ebiten.Termination
	}
	return nil
}

// handleWindowCommands 处理与导航无关的窗口级按键
func (a *App) handleWindowCommands() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
			log.Printf("[App] Enter fullscreen")
		}
	}

	// F12 截图（在下一次 Draw 中完成）
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		a.pendingScreenshot = true
	}

	// H 切换 HUD
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		a.hud.Toggle()
	}
}

// Draw 绘制当前视图
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	view := a.view.Snapshot()
	a.renderer.Draw(screen, view)

	// 截图不包含 HUD
	if a.pendingScreenshot {
		a.pendingScreenshot = false
		a.saveScreenshot(screen)
	}

	a.hud.Draw(screen, view, a.navigation.Mode())
}

// saveScreenshot 读取屏幕像素并交给截图管理器
func (a *App) saveScreenshot(screen *ebiten.Image) {
	if !a.screenshots.Available() {
		log.Printf("[App] Screenshot skipped: %v", game.ErrStorageUnavailable)
		return
	}

	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)

	if _, err := a.screenshots.Save(img); err != nil {
		log.Printf("[App] Screenshot failed: %v", err)
	}
}

// Layout 使用窗口的实际尺寸作为逻辑屏幕尺寸
// 着色器通过 Resolution uniform 适配任意尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		a.width, a.height = outsideWidth, outsideHeight
	}
	return a.width, a.height
}

// View 返回当前视图快照
func (a *App) View() game.ViewState {
	return a.view.Snapshot()
}
