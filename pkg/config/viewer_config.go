package config

import "image/color"

// 窗口尺寸（逻辑像素）
const (
	ScreenWidth  = 640
	ScreenHeight = 480
)

// TargetFPS is the frame rate both viewers aim for.
const TargetFPS = 60

// MaxFrameDelta caps the measured frame time (seconds) handed to the particle system.
const MaxFrameDelta = 0.25

// PointSize is the edge length (pixels) of the quad drawn for each render point.
const PointSize = 1.0

// Background colour of the window viewer.
var BackgroundColor = color.RGBA{0, 0, 0, 255}

// Preset bindings for the mouse buttons and keys of both viewers.
const (
	LeftClickPreset  = "burst"
	RightClickPreset = "ring"
	StreamKeyPreset  = "fountain" // F
	TimedKeyPreset   = "puff"     // T
)
