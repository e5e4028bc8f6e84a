package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/leterax/go-flycam/pkg/app"
	"github.com/leterax/go-flycam/pkg/config"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	fmt.Println("Starting flycam...")

	// Parse command line flags
	configPath := flag.String("config", "", "Path to a YAML config file (empty for defaults)")
	watch := flag.Bool("watch", false, "Reload the config file when it changes")
	width := flag.Int("width", config.DefaultWidth, "Window width")
	height := flag.Int("height", config.DefaultHeight, "Window height")
	vsync := flag.Bool("vsync", true, "Enable vsync")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	// Flags given explicitly win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Window.Width = *width
		case "height":
			cfg.Window.Height = *height
		case "vsync":
			cfg.Window.VSync = *vsync
		}
	})
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		log.Fatalf("Invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	a, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: *configPath,
		Watch:      *watch,
	})
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	a.Run()
}
