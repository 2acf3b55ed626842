package systems

import (
	"reflect"
	"testing"

	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestEbitenKeyNamesCoverKnownNames 测试所有受支持的按键名称在 ebiten 下都有对应按键
func TestEbitenKeyNamesCoverKnownNames(t *testing.T) {
	for name := range ebitenKeyNames {
		if !config.IsKnownKeyName(name) {
			t.Errorf("ebiten table has unsupported name %q", name)
		}
	}
	for _, name := range []string{"A", "Z", "0", "9", "ArrowUp", "Space", "Backspace"} {
		if _, ok := ebitenKeyNames[name]; !ok {
			t.Errorf("ebiten table missing %q", name)
		}
	}
}

// TestInputSystemTranslate 测试原始输入到事件的翻译
func TestInputSystemTranslate(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		wheelY   float64
		closing  bool
		want     []types.InputEvent
	}{
		{
			name:    "arrow and command keys",
			pressed: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyM},
			want: []types.InputEvent{
				types.KeyDownEvent(types.KeyUp),
				types.KeyDownEvent(types.KeyToggleMouseFollow),
			},
		},
		{
			name:     "release",
			released: []ebiten.Key{ebiten.KeyArrowLeft},
			want:     []types.InputEvent{types.KeyUpEvent(types.KeyLeft)},
		},
		{
			name:    "unbound key ignored",
			pressed: []ebiten.Key{ebiten.KeyQ},
			want:    nil,
		},
		{
			name:    "escape quits",
			pressed: []ebiten.Key{ebiten.KeyEscape},
			want:    []types.InputEvent{types.QuitEvent()},
		},
		{
			name:    "window closing quits",
			closing: true,
			want:    []types.InputEvent{types.QuitEvent()},
		},
		{
			name:   "wheel up two notches",
			wheelY: 2,
			want:   []types.InputEvent{types.ScrollUpEvent(), types.ScrollUpEvent()},
		},
		{
			name:   "wheel down",
			wheelY: -1,
			want:   []types.InputEvent{types.ScrollDownEvent()},
		},
		{
			name:    "digits and reset",
			pressed: []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyR, ebiten.KeyP},
			want: []types.InputEvent{
				types.KeyDownEvent(types.KeyIncreaseZoomSpeed),
				types.KeyDownEvent(types.KeyDecreaseZoomSpeed),
				types.KeyDownEvent(types.KeyReset),
				types.KeyDownEvent(types.KeyToggleAutoPath),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInputSystem(config.DefaultKeyBindings())
			got := s.translate(tt.pressed, tt.released, tt.wheelY, tt.closing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("translate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestInputSystemWheelAccumulation 测试触控板小数偏移的累积
func TestInputSystemWheelAccumulation(t *testing.T) {
	s := NewInputSystem(config.DefaultKeyBindings())

	if got := s.translate(nil, nil, 0.4, false); len(got) != 0 {
		t.Fatalf("0.4 notch should not scroll, got %v", got)
	}
	if got := s.translate(nil, nil, 0.4, false); len(got) != 0 {
		t.Fatalf("0.8 notch should not scroll, got %v", got)
	}
	got := s.translate(nil, nil, 0.4, false)
	if len(got) != 1 || got[0] != types.ScrollUpEvent() {
		t.Fatalf("1.2 notches should scroll up once, got %v", got)
	}

	// 反方向时先抵消剩余的 0.2
	got = s.translate(nil, nil, -1.0, false)
	if len(got) != 0 {
		t.Fatalf("-0.8 should not scroll, got %v", got)
	}
	got = s.translate(nil, nil, -0.5, false)
	if len(got) != 1 || got[0] != types.ScrollDownEvent() {
		t.Fatalf("-1.3 should scroll down once, got %v", got)
	}
}

func TestInputSystemCustomBindings(t *testing.T) {
	keys := config.DefaultKeyBindings()
	keys.Up = "W"
	s := NewInputSystem(keys)

	got := s.translate([]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}, nil, 0, false)
	want := []types.InputEvent{types.KeyDownEvent(types.KeyUp)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("translate() = %v, want %v", got, want)
	}
}
