package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-flycam/pkg/camera"
)

// document mirrors the YAML layout
type document struct {
	Window   windowDoc         `yaml:"window"`
	Render   renderDoc         `yaml:"render"`
	Camera   cameraDoc         `yaml:"camera"`
	Bindings map[string]string `yaml:"bindings"`
	Presets  []presetDoc       `yaml:"presets"`
}

type windowDoc struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type renderDoc struct {
	Background []float32 `yaml:"background"`
	FOV        float32   `yaml:"fov"`
	Near       float32   `yaml:"near"`
	Far        float32   `yaml:"far"`
}

type cameraDoc struct {
	Position    []float32 `yaml:"position"`
	Front       []float32 `yaml:"front"`
	Up          []float32 `yaml:"up"`
	Yaw         float32   `yaml:"yaw"`
	Pitch       float32   `yaml:"pitch"`
	MoveSpeed   float32   `yaml:"move_speed"`
	Sensitivity float32   `yaml:"sensitivity"`
}

type presetDoc struct {
	Key      string    `yaml:"key"`
	Position []float32 `yaml:"position"`
	Front    []float32 `yaml:"front"`
	Up       []float32 `yaml:"up,omitempty"`
}

func defaultDocument() document {
	d := Default()
	pose := d.Camera.Pose
	return document{
		Window: windowDoc{
			Width:  d.Window.Width,
			Height: d.Window.Height,
			Title:  d.Window.Title,
			VSync:  d.Window.VSync,
		},
		Render: renderDoc{
			Background: d.Render.Background[:],
			FOV:        d.Render.FOV,
			Near:       d.Render.Near,
			Far:        d.Render.Far,
		},
		Camera: cameraDoc{
			Position:    pose.Position[:],
			Front:       pose.Front[:],
			Up:          pose.Up[:],
			Yaw:         pose.Yaw,
			Pitch:       pose.Pitch,
			MoveSpeed:   d.Camera.MoveSpeed,
			Sensitivity: d.Camera.Sensitivity,
		},
	}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func toVec3(field string, v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, invalidf("%s must have 3 components, got %d", field, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

func toColor(field string, v []float32) (mgl32.Vec4, error) {
	var c mgl32.Vec4
	switch len(v) {
	case 3:
		c = mgl32.Vec4{v[0], v[1], v[2], 1}
	case 4:
		c = mgl32.Vec4{v[0], v[1], v[2], v[3]}
	default:
		return c, invalidf("%s must have 3 or 4 components, got %d", field, len(v))
	}
	for i, x := range c {
		if x < 0 || x > 1 {
			return c, invalidf("%s component %d out of range [0,1]: %v", field, i, x)
		}
	}
	return c, nil
}

func checkBasis(field string, front, up mgl32.Vec3) error {
	if front.LenSqr() == 0 {
		return invalidf("%s.front must not be zero", field)
	}
	if front.Cross(up).LenSqr() < 1e-12 {
		return invalidf("%s.front %v is parallel to up %v", field, front, up)
	}
	return nil
}

func (d document) resolve() (Config, error) {
	var cfg Config

	if d.Window.Width <= 0 || d.Window.Height <= 0 {
		return cfg, invalidf("window size must be positive, got %dx%d", d.Window.Width, d.Window.Height)
	}
	cfg.Window = WindowConfig(d.Window)

	background, err := toColor("render.background", d.Render.Background)
	if err != nil {
		return cfg, err
	}
	if d.Render.FOV <= 0 || d.Render.FOV >= 180 {
		return cfg, invalidf("render.fov must be in (0,180), got %v", d.Render.FOV)
	}
	if d.Render.Near <= 0 || d.Render.Far <= d.Render.Near {
		return cfg, invalidf("render.near/far must satisfy 0 < near < far, got %v/%v", d.Render.Near, d.Render.Far)
	}
	cfg.Render = RenderConfig{
		Background: background,
		FOV:        d.Render.FOV,
		Near:       d.Render.Near,
		Far:        d.Render.Far,
	}

	if cfg.Camera, err = d.Camera.resolve(); err != nil {
		return cfg, err
	}

	if cfg.Bindings, err = resolveBindings(d.Bindings); err != nil {
		return cfg, err
	}
	if cfg.Presets, err = resolvePresets(d.Presets, cfg.Camera.Pose.Up); err != nil {
		return cfg, err
	}
	for key := range cfg.Presets {
		if cmd, ok := cfg.Bindings[key]; ok {
			return cfg, invalidf("key %v is bound to both %v and a preset", key, cmd)
		}
	}

	return cfg, nil
}

func (c cameraDoc) resolve() (CameraConfig, error) {
	var cc CameraConfig
	var err error

	if cc.Pose.Position, err = toVec3("camera.position", c.Position); err != nil {
		return cc, err
	}
	if cc.Pose.Front, err = toVec3("camera.front", c.Front); err != nil {
		return cc, err
	}
	if cc.Pose.Up, err = toVec3("camera.up", c.Up); err != nil {
		return cc, err
	}
	if err := checkBasis("camera", cc.Pose.Front, cc.Pose.Up); err != nil {
		return cc, err
	}
	cc.Pose.Front = cc.Pose.Front.Normalize()
	cc.Pose.Yaw = c.Yaw
	cc.Pose.Pitch = c.Pitch

	if c.MoveSpeed <= 0 {
		return cc, invalidf("camera.move_speed must be positive, got %v", c.MoveSpeed)
	}
	if c.Sensitivity <= 0 {
		return cc, invalidf("camera.sensitivity must be positive, got %v", c.Sensitivity)
	}
	cc.MoveSpeed = c.MoveSpeed
	cc.Sensitivity = c.Sensitivity

	return cc, nil
}

func resolveBindings(raw map[string]string) (camera.Bindings, error) {
	if raw == nil {
		return camera.DefaultBindings(), nil
	}
	bindings := make(camera.Bindings, len(raw))
	for name, command := range raw {
		key, err := camera.ParseKey(name)
		if err != nil {
			return nil, invalidf("bindings: %v", err)
		}
		cmd, err := camera.ParseCommand(command)
		if err != nil {
			return nil, invalidf("bindings.%s: %v", name, err)
		}
		if _, dup := bindings[key]; dup {
			return nil, invalidf("bindings: key %v listed twice", key)
		}
		bindings[key] = cmd
	}
	return bindings, nil
}

// resolvePresets parses the preset table. A nil table keeps the defaults.
func resolvePresets(raw []presetDoc, initialUp mgl32.Vec3) (map[camera.Key]camera.Preset, error) {
	if raw == nil {
		presets := camera.DefaultPresets()
		if err := checkPresetBases(presets, initialUp); err != nil {
			return nil, err
		}
		return presets, nil
	}
	presets := make(map[camera.Key]camera.Preset, len(raw))
	for i, p := range raw {
		field := fmt.Sprintf("presets[%d]", i)
		key, err := camera.ParseKey(p.Key)
		if err != nil {
			return nil, invalidf("%s: %v", field, err)
		}
		if _, dup := presets[key]; dup {
			return nil, invalidf("%s: key %v listed twice", field, key)
		}

		var preset camera.Preset
		if preset.Position, err = toVec3(field+".position", p.Position); err != nil {
			return nil, err
		}
		if preset.Front, err = toVec3(field+".front", p.Front); err != nil {
			return nil, err
		}
		if p.Up != nil {
			v, err := toVec3(field+".up", p.Up)
			if err != nil {
				return nil, err
			}
			preset.Up = &v
		}
		presets[key] = preset
	}
	if err := checkPresetBases(presets, initialUp); err != nil {
		return nil, err
	}
	for key, preset := range presets {
		preset.Front = preset.Front.Normalize()
		presets[key] = preset
	}
	return presets, nil
}

// checkPresetBases rejects any preset whose front could end up parallel to
// the camera's up. A preset without its own up inherits the initial up or
// the up left behind by any other preset, so it is checked against all of them.
func checkPresetBases(presets map[camera.Key]camera.Preset, initialUp mgl32.Vec3) error {
	ups := []mgl32.Vec3{initialUp}
	for _, p := range presets {
		if p.Up != nil {
			ups = append(ups, *p.Up)
		}
	}
	for key, p := range presets {
		field := fmt.Sprintf("presets.%v", key)
		if p.Up != nil {
			if err := checkBasis(field, p.Front, *p.Up); err != nil {
				return err
			}
			continue
		}
		for _, up := range ups {
			if err := checkBasis(field, p.Front, up); err != nil {
				return err
			}
		}
	}
	return nil
}
