package terminal

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/game"
	"github.com/decker502/mandelview/pkg/systems"
	"github.com/decker502/mandelview/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// Viewer 终端后端的帧循环
type Viewer struct {
	screen tcell.Screen
	cfg    *config.ViewerConfig

	view       *game.ViewState
	navigation *systems.NavigationSystem
	input      *InputTranslator
	renderer   *Renderer
	hudEnabled bool

	lastFrame time.Time
}

// NewViewer 在已初始化的 screen 上创建查看器
func NewViewer(screen tcell.Screen, cfg *config.ViewerConfig) *Viewer {
	initial := game.InitialViewState(cfg.View)
	view := game.NewViewState(initial)
	cursor := game.NewAutoPathCursorFromConfig(cfg.AutoPath)

	return &Viewer{
		screen:     screen,
		cfg:        cfg,
		view:       view,
		navigation: systems.NewNavigationSystem(view, cursor, initial, cfg.Navigation),
		input:      NewInputTranslator(cfg.Keys, time.Duration(cfg.Terminal.KeyHoldMs)*time.Millisecond),
		renderer:   NewRenderer(cfg.Terminal.CellAspect),
		hudEnabled: cfg.HUD.Enabled,
	}
}

// Run 打开终端屏幕并运行查看器，直到退出或 ctx 取消
func Run(ctx context.Context, cfg *config.ViewerConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	return NewViewer(screen, cfg).Run(ctx)
}

// Run 按配置的 TPS 执行帧循环
//
// tcell 的 PollEvent 是阻塞调用，由单独的 goroutine 转发到通道；
// 视图状态只在本 goroutine 中修改。
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)

	// screen.Fini 之后 PollEvent 返回 nil
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(v.cfg.Window.TPS))
	defer ticker.Stop()

	var pending []tcell.Event
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			pending = append(pending, ev)
		case now := <-ticker.C:
			if !v.Step(pending, now) {
				log.Printf("[Terminal] Exited after %d frames", v.navigation.Frames())
				return nil
			}
			pending = pending[:0]
		}
	}
}

// Step 处理一帧：翻译事件、推进导航、绘制并刷新屏幕
//
// 返回:
//   - bool: 收到 Quit 时返回 false
func (v *Viewer) Step(raw []tcell.Event, now time.Time) bool {
	var events []types.InputEvent
	for _, ev := range raw {
		events = append(events, v.input.Translate(ev, now)...)
	}
	events = append(events, v.input.Expire(now)...)

	if v.input.TakeHUDToggle() {
		v.hudEnabled = !v.hudEnabled
	}

	width, height := v.screen.Size()
	v.navigation.SetViewport(width, height)
	if !v.navigation.Update(events, v.input.Pointer()) {
		return false
	}

	view := v.view.Snapshot()
	v.renderer.Draw(v.screen, view)
	if v.hudEnabled {
		DrawText(v.screen, systems.FormatHUD(view, v.navigation.Mode(), v.fps(now)))
	}
	v.screen.Show()
	return true
}

// fps 根据两帧间隔估算帧率
func (v *Viewer) fps(now time.Time) float64 {
	defer func() { v.lastFrame = now }()
	if v.lastFrame.IsZero() {
		return 0
	}
	dt := now.Sub(v.lastFrame).Seconds()
	if dt <= 0 {
		return 0
	}
	return 1 / dt
}

// View 返回当前视图快照
func (v *Viewer) View() game.ViewState {
	return v.view.Snapshot()
}

// Mode 返回当前导航模式
func (v *Viewer) Mode() types.NavigationMode {
	return v.navigation.Mode()
}
