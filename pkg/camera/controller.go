package camera

import (
	"fmt"
	"strings"
)

// InputHandler receives input events from a windowing backend.
// Calls must be serialized on the goroutine that also reads the camera.
type InputHandler interface {
	OnKey(key Key, action Action)
	OnMouseMove(x, y float64)
}

// Command is an action a key can be bound to
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandMoveForward
	CommandMoveBackward
	CommandStrafeLeft
	CommandStrafeRight
)

var commandNames = map[Command]string{
	CommandNone:         "none",
	CommandQuit:         "quit",
	CommandMoveForward:  "forward",
	CommandMoveBackward: "backward",
	CommandStrafeLeft:   "left",
	CommandStrafeRight:  "right",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand resolves a command name as used in configuration files
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if c != CommandNone && n == name {
			return c, nil
		}
	}
	return CommandNone, fmt.Errorf("unknown command %q", name)
}

// Bindings maps keys to commands
type Bindings map[Key]Command

// DefaultBindings returns Escape to quit and WASD movement
func DefaultBindings() Bindings {
	return Bindings{
		KeyEscape: CommandQuit,
		KeyW:      CommandMoveForward,
		KeyS:      CommandMoveBackward,
		KeyA:      CommandStrafeLeft,
		KeyD:      CommandStrafeRight,
	}
}

// Controller turns key and cursor events into camera updates
type Controller struct {
	camera   *Camera
	bindings Bindings
	presets  map[Key]Preset

	quitRequested bool
}

var _ InputHandler = (*Controller)(nil)

// NewController creates a controller driving the given camera.
// Nil bindings or presets fall back to the defaults.
func NewController(camera *Camera, bindings Bindings, presets map[Key]Preset) *Controller {
	ctrl := &Controller{camera: camera}
	ctrl.Rebind(bindings, presets)
	return ctrl
}

// Rebind replaces the key bindings and presets
func (ctrl *Controller) Rebind(bindings Bindings, presets map[Key]Preset) {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	if presets == nil {
		presets = DefaultPresets()
	}
	ctrl.bindings = bindings
	ctrl.presets = presets
}

// Camera returns the controlled camera
func (ctrl *Controller) Camera() *Camera {
	return ctrl.camera
}

// QuitRequested reports whether the quit key has been pressed
func (ctrl *Controller) QuitRequested() bool {
	return ctrl.quitRequested
}

// OnKey handles a key transition. Only presses have an effect; movement is
// one fixed step per press, not per frame while held.
func (ctrl *Controller) OnKey(key Key, action Action) {
	if action != Press {
		return
	}

	if preset, ok := ctrl.presets[key]; ok {
		ctrl.camera.ApplyPreset(preset)
		return
	}

	switch ctrl.bindings[key] {
	case CommandQuit:
		ctrl.quitRequested = true
	case CommandMoveForward:
		ctrl.camera.MoveForward()
	case CommandMoveBackward:
		ctrl.camera.MoveBackward()
	case CommandStrafeLeft:
		ctrl.camera.StrafeLeft()
	case CommandStrafeRight:
		ctrl.camera.StrafeRight()
	}
}

// OnMouseMove handles a cursor position sample in window pixels
func (ctrl *Controller) OnMouseMove(x, y float64) {
	ctrl.camera.HandleMouseMovement(x, y)
}
