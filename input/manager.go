package input

import (
	"curve-engine/core"
)

// Manager tracks mouse and keyboard state, polled once per frame.
type Manager struct {
	// Mouse state
	MouseX, MouseY float64
	ScrollDelta    float64

	// Button states
	mouseButtons     [8]bool
	mouseButtonsPrev [8]bool

	// Key states
	keys     [512]bool
	keysPrev [512]bool

	window *core.Window
}

// Mouse button constants
const (
	MouseLeft   = 0
	MouseRight  = 1
	MouseMiddle = 2
)

// NewManager creates an input manager with a scroll callback registered.
func NewManager(window *core.Window) *Manager {
	m := &Manager{window: window}

	window.SetScrollCallback(func(xoff, yoff float64) {
		m.ScrollDelta += yoff
	})

	return m
}

// Update should be called once per frame, after PollEvents.
func (m *Manager) Update() {
	m.MouseX, m.MouseY = m.window.GetCursorPos()

	copy(m.mouseButtonsPrev[:], m.mouseButtons[:])
	copy(m.keysPrev[:], m.keys[:])

	m.mouseButtons[MouseLeft] = m.window.IsMouseButtonPressed(MouseLeft)
	m.mouseButtons[MouseRight] = m.window.IsMouseButtonPressed(MouseRight)
	m.mouseButtons[MouseMiddle] = m.window.IsMouseButtonPressed(MouseMiddle)

	watchedKeys := []int{
		core.KeyEscape, core.KeyG, core.KeyM, core.KeyR,
		core.KeyLeftBracket, core.KeyRightBracket,
		core.KeyMinus, core.KeyEqual, core.KeySpace,
		core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight,
	}
	for _, k := range watchedKeys {
		if k >= 0 && k < len(m.keys) {
			m.keys[k] = m.window.IsKeyPressed(k)
		}
	}
}

// EndFrame clears per-frame accumulated state.
func (m *Manager) EndFrame() {
	m.ScrollDelta = 0
}

// --- Mouse queries ---

func (m *Manager) IsMouseDown(button int) bool {
	if button < 0 || button >= len(m.mouseButtons) {
		return false
	}
	return m.mouseButtons[button]
}

func (m *Manager) IsMousePressed(button int) bool {
	if button < 0 || button >= len(m.mouseButtons) {
		return false
	}
	return m.mouseButtons[button] && !m.mouseButtonsPrev[button]
}

func (m *Manager) IsMouseReleased(button int) bool {
	if button < 0 || button >= len(m.mouseButtons) {
		return false
	}
	return !m.mouseButtons[button] && m.mouseButtonsPrev[button]
}

// --- Key queries ---

func (m *Manager) IsKeyDown(key int) bool {
	if key < 0 || key >= len(m.keys) {
		return false
	}
	return m.keys[key]
}

func (m *Manager) IsKeyPressed(key int) bool {
	if key < 0 || key >= len(m.keys) {
		return false
	}
	return m.keys[key] && !m.keysPrev[key]
}
