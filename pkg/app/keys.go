package app

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/leterax/go-flycam/pkg/camera"
)

var glfwKeys = map[glfw.Key]camera.Key{
	glfw.KeyEscape: camera.KeyEscape,
	glfw.KeySpace:  camera.KeySpace,
	glfw.KeyEnter:  camera.KeyEnter,
	glfw.KeyTab:    camera.KeyTab,
	glfw.KeyLeft:   camera.KeyLeft,
	glfw.KeyRight:  camera.KeyRight,
	glfw.KeyUp:     camera.KeyUp,
	glfw.KeyDown:   camera.KeyDown,
}

// translateKey maps a GLFW key code to a camera key
func translateKey(key glfw.Key) camera.Key {
	switch {
	case key >= glfw.Key0 && key <= glfw.Key9:
		return camera.Key0 + camera.Key(key-glfw.Key0)
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return camera.KeyA + camera.Key(key-glfw.KeyA)
	}
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return camera.KeyUnknown
}

// translateAction maps a GLFW key action to a camera action
func translateAction(action glfw.Action) camera.Action {
	switch action {
	case glfw.Press:
		return camera.Press
	case glfw.Repeat:
		return camera.Repeat
	}
	return camera.Release
}
