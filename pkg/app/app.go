// Package app wires the camera, the scene and the render loop to a GLFW
// window with an OpenGL context.
package app

import (
	_ "embed"
	"fmt"
	"log"

	"openglhelper"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-flycam/pkg/camera"
	"github.com/leterax/go-flycam/pkg/config"
	"github.com/leterax/go-flycam/pkg/render"
	"github.com/leterax/go-flycam/pkg/scene"
)

//go:embed shaders/scene.vert
var vertexShaderSource string

//go:embed shaders/scene.frag
var fragmentShaderSource string

// Options configures an App
type Options struct {
	Config config.Config
	// ConfigPath is watched for changes when Watch is set
	ConfigPath string
	Watch      bool
}

// App owns the window, GPU resources, camera and render loop
type App struct {
	window     *openglhelper.Window
	shader     *openglhelper.Shader
	mesh       *openglhelper.Mesh
	controller *camera.Controller
	loop       *render.Loop
	watcher    *config.Watcher
}

// New opens the window, uploads the scene and registers input callbacks.
// It must be called from the main thread.
func New(opts Options) (*App, error) {
	cfg := opts.Config

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	shader, err := openglhelper.NewShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}

	mesh := openglhelper.NewMesh(scene.Vertices(), scene.FloatsPerVertex,
		openglhelper.Attribute{Index: 0, Components: scene.PositionComponents, Offset: 0},
		openglhelper.Attribute{Index: 1, Components: scene.ColorComponents, Offset: scene.ColorOffset},
	)

	cam := camera.NewCamera(cfg.Camera.Pose)
	cam.SetMoveSpeed(cfg.Camera.MoveSpeed)
	cam.SetSensitivity(cfg.Camera.Sensitivity)
	controller := camera.NewController(cam, cfg.Bindings, cfg.Presets)

	a := &App{
		window:     window,
		shader:     shader,
		mesh:       mesh,
		controller: controller,
		loop:       render.NewLoop(window, shader, mesh, controller, cfg),
	}

	if opts.Watch && opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, config.DefaultDebounce)
		if err != nil {
			a.Cleanup()
			return nil, fmt.Errorf("failed to watch config: %w", err)
		}
		a.watcher = watcher
		a.loop.WatchConfig(watcher.Updates())
		go logWatchErrors(watcher)
		log.Printf("Watching %s for changes", watcher.Path())
	}

	// Set up callbacks
	window.GLFWWindow().SetKeyCallback(a.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(a.cursorPosCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(a.framebufferSizeCallback)

	// Cursor positions are only delivered while captured
	window.SetMouseCaptured(true)

	log.Printf("Scene uploaded: %d vertices", mesh.VertexCount())

	return a, nil
}

func logWatchErrors(w *config.Watcher) {
	for err := range w.Errors() {
		log.Printf("Config reload failed, keeping previous settings: %v", err)
	}
}

// Run renders until the window is closed or quit is pressed, then releases
// all resources
func (a *App) Run() {
	a.loop.Run()
	log.Printf("Exiting after %d frames", a.loop.Frames())
	a.Cleanup()
}

// Cleanup frees GPU resources, stops the config watcher and closes the window
func (a *App) Cleanup() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("Failed to close config watcher: %v", err)
		}
		a.watcher = nil
	}
	if a.mesh != nil {
		a.mesh.Delete()
		a.mesh = nil
	}
	if a.shader != nil {
		a.shader.Delete()
		a.shader = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
}

// Callback functions
func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	a.controller.OnKey(translateKey(key), translateAction(action))
}

func (a *App) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if a.window.IsMouseCaptured() {
		a.controller.OnMouseMove(xpos, ypos)
	}
}

func (a *App) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	a.window.OnResize(width, height)
	a.loop.Resize(width, height)
}
