package main

import (
	"fmt"
	"time"

	"curve-engine/app"
	"curve-engine/config"
	"curve-engine/core"
	"curve-engine/input"
	"curve-engine/math"
	"curve-engine/renderer"
)

const configPath = "curve.yaml"

// Suggested parameter ranges; the adjustment keys clamp to these.
const (
	minStiffness = 0.01
	maxStiffness = 0.3
	minDamping   = 0.0
	maxDamping   = 1.0
)

func main() {
	fmt.Println("Starting curve demo...")

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("[Config] %v\n", err)
		return
	}

	windowConfig := core.DefaultWindowConfig()
	windowConfig.Title = cfg.Window.Title
	windowConfig.Width = cfg.Window.Width
	windowConfig.Height = cfg.Window.Height
	windowConfig.VSync = cfg.Window.VSync

	window, err := core.NewWindow(windowConfig)
	if err != nil {
		fmt.Printf("Failed to create window: %v\n", err)
		return
	}
	defer window.Destroy()

	renderEngine, err := renderer.NewRenderEngine(window)
	if err != nil {
		fmt.Printf("Failed to create render engine: %v\n", err)
		return
	}
	defer renderEngine.Destroy()

	// ── Simulation state ──────────────────────────────────────────────────────
	a := app.New(float64(cfg.Window.Width), float64(cfg.Window.Height))
	a.Params.Stiffness = cfg.Physics.Stiffness
	a.Params.Damping = cfg.Physics.Damping
	a.Segments = cfg.Curve.Segments
	a.TangentStride = cfg.Curve.TangentStride

	im := input.NewManager(window)
	steering := input.NewSteering(a.Curve)
	steering.PointerSensitivity = cfg.Steering.PointerSensitivity
	steering.RotationSensitivity = cfg.Steering.RotationSensitivity
	steering.Margin = cfg.Steering.Margin

	// No motion sensor on desktop; the keyboard-emulated source stands in
	// when enabled with G, otherwise rotation mode degrades to pointer.
	keySource := input.NewKeyRotationSource()
	var rotSource input.RotationSource = input.NullRotationSource{}
	emulatedRotation := false
	degradeLogged := false

	fmt.Println("===========================================")
	fmt.Println("  Curve Engine - Spring Bezier Demo")
	fmt.Println("===========================================")
	fmt.Println("")
	fmt.Println("CONTROLS:")
	fmt.Println("  Left Mouse Drag - Move an interior control point")
	fmt.Println("  Mouse Move      - Steer targets (pointer mode)")
	fmt.Println("  Arrow Keys      - Steer targets (rotation mode, emulated sensor)")
	fmt.Println("  M               - Toggle pointer / rotation steering")
	fmt.Println("  G               - Toggle the emulated rotation sensor")
	fmt.Println("  R               - Reset interior points")
	fmt.Println("  - / =           - Decrease / increase stiffness (also scroll)")
	fmt.Println("  [ / ]           - Decrease / increase damping")
	fmt.Println("")
	fmt.Println("EXIT: ESC")
	fmt.Println("===========================================")
	fmt.Println("")

	debugOverlay := &DebugOverlay{}

	frameCount := 0
	displayFPS := 0
	lastTitleTime := time.Now()
	deltaTime := app.DefaultDT // previous frame's dt, for input scaling

	for !window.ShouldClose() {
		window.PollEvents()
		im.Update()

		if im.IsKeyDown(core.KeyEscape) {
			break
		}

		// M key — toggle steering mode
		if im.IsKeyPressed(core.KeyM) {
			if steering.Mode == input.ModePointer {
				steering.Mode = input.ModeRotation
			} else {
				steering.Mode = input.ModePointer
			}
			degradeLogged = false
			fmt.Printf("[Mode] %s steering\n", steering.Mode)
		}

		// G key — toggle the emulated rotation sensor
		if im.IsKeyPressed(core.KeyG) {
			emulatedRotation = !emulatedRotation
			if emulatedRotation {
				rotSource = keySource
			} else {
				rotSource = input.NullRotationSource{}
			}
			degradeLogged = false
			fmt.Printf("[Motion] emulated sensor %s\n",
				map[bool]string{true: "ON", false: "OFF"}[emulatedRotation])
		}

		// R key — reset interior points
		if im.IsKeyPressed(core.KeyR) {
			a.Reset()
			steering.CaptureRest(a.Curve)
			fmt.Println("[Reset] interior points restored")
		}

		// Stiffness: - / = keys plus the scroll wheel
		if im.IsKeyDown(core.KeyMinus) {
			a.Params.Stiffness -= 0.1 * deltaTime
		}
		if im.IsKeyDown(core.KeyEqual) {
			a.Params.Stiffness += 0.1 * deltaTime
		}
		a.Params.Stiffness += im.ScrollDelta * 0.005
		if a.Params.Stiffness < minStiffness {
			a.Params.Stiffness = minStiffness
		}
		if a.Params.Stiffness > maxStiffness {
			a.Params.Stiffness = maxStiffness
		}

		// Damping: [ / ] keys
		if im.IsKeyDown(core.KeyLeftBracket) {
			a.Params.Damping -= 0.3 * deltaTime
		}
		if im.IsKeyDown(core.KeyRightBracket) {
			a.Params.Damping += 0.3 * deltaTime
		}
		if a.Params.Damping < minDamping {
			a.Params.Damping = minDamping
		}
		if a.Params.Damping > maxDamping {
			a.Params.Damping = maxDamping
		}

		// Rotation mode without a sensor degrades to pointer steering
		if steering.Mode == input.ModeRotation && !rotSource.Available() {
			if !degradeLogged {
				fmt.Println("[Motion] no rotation source, falling back to pointer steering")
				degradeLogged = true
			}
			steering.Mode = input.ModePointer
		}

		keySource.Update(
			im.IsKeyDown(core.KeyUp), im.IsKeyDown(core.KeyDown),
			im.IsKeyDown(core.KeyLeft), im.IsKeyDown(core.KeyRight),
			deltaTime)

		// Steering writes targets (or drives a drag), then physics runs
		a.Width = float64(window.Width)
		a.Height = float64(window.Height)
		steering.Update(a.Curve,
			math.NewVec2(im.MouseX, im.MouseY),
			im.IsMouseDown(input.MouseLeft),
			im.IsMousePressed(input.MouseLeft),
			rotSource.Rates(),
			a.Width, a.Height)

		deltaTime = a.Frame(time.Now())

		// ── Draw ──────────────────────────────────────────────────────────────
		renderEngine.BeginFrame()
		renderEngine.DrawCurve(a.Curve)

		h := float32(window.Height)
		stiffFrac := float32((a.Params.Stiffness - minStiffness) / (maxStiffness - minStiffness))
		dampFrac := float32((a.Params.Damping - minDamping) / (maxDamping - minDamping))
		renderEngine.DrawParamBar(10, h-42, 120, 12, stiffFrac)
		renderEngine.DrawParamBar(10, h-24, 120, 12, dampFrac)

		renderEngine.Present()
		im.EndFrame()

		// ── Title + periodic console report ───────────────────────────────────
		frameCount++
		now := time.Now()
		if now.Sub(lastTitleTime).Seconds() >= 1.0 {
			displayFPS = frameCount
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | %s | k=%.3f c=%.2f",
				windowConfig.Title, displayFPS, steering.Mode,
				a.Params.Stiffness, a.Params.Damping))
			frameCount = 0
			lastTitleTime = now

			calls, verts := renderEngine.DrawStats()
			p1, p2 := a.Curve.Points[1], a.Curve.Points[2]
			debugOverlay.Clear()
			debugOverlay.AddLine("[Frame] FPS: %d | mode: %s | drag: %v | draw: calls=%d verts=%d",
				displayFPS, steering.Mode, steering.Dragging(), calls, verts)
			debugOverlay.AddLine("[Frame] P1 pos=(%.1f, %.1f) tgt=(%.1f, %.1f) | P2 pos=(%.1f, %.1f) tgt=(%.1f, %.1f)",
				p1.Position.X, p1.Position.Y, p1.Target.X, p1.Target.Y,
				p2.Position.X, p2.Position.Y, p2.Target.X, p2.Target.Y)
			fmt.Print(debugOverlay.GetText())
		}
	}

	fmt.Println("Exiting...")
}
