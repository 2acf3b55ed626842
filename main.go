package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/decker502/mandelview/pkg/app"
	"github.com/decker502/mandelview/pkg/config"
	"github.com/decker502/mandelview/pkg/embedded"
	"github.com/decker502/mandelview/pkg/terminal"
)

const defaultConfigPath = "data/viewer.yaml"

var (
	verboseFlag    = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag     = flag.String("config", "", "Path to a viewer YAML config (default: embedded data/viewer.yaml)")
	backendFlag    = flag.String("backend", "ebiten", "Rendering backend: ebiten or terminal")
	fullscreenFlag = flag.Bool("fullscreen", false, "Start in fullscreen (ebiten backend only)")
)

// loadConfig 读取 --config 指定的文件，未指定时使用嵌入的默认配置
func loadConfig(path string) (*config.ViewerConfig, error) {
	if path != "" {
		return config.LoadViewerConfig(path)
	}
	data, err := embedded.ReadFile(defaultConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseViewerConfig(data)
}

func main() {
	flag.Parse()

	embedded.Init(assetsFS, dataFS)
	app.ConfigureLogging(*verboseFlag)

	viewerCfg, err := loadConfig(*configFlag)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("[Config] Loaded viewer config (backend=%s)", *backendFlag)

	switch *backendFlag {
	case "ebiten":
		err = app.Run(app.Config{
			Verbose:    *verboseFlag,
			Fullscreen: *fullscreenFlag,
			Viewer:     viewerCfg,
		})
	case "terminal":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = terminal.Run(ctx, viewerCfg)
		if err == context.Canceled {
			err = nil
		}
	default:
		log.SetOutput(os.Stderr)
		log.Fatalf("Unknown backend %q (want ebiten or terminal)", *backendFlag)
	}

	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("Viewer failed: %v", err)
	}
}
