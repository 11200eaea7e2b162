package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"blockworld/internal/game"
)

const mouseSensitivity = 0.15

// inputState translates glfw events and held keys into session input calls.
// Discrete events go through callbacks; continuous movement intent is
// sampled once per frame.
type inputState struct {
	window  *glfw.Window
	session *game.Session

	captured   bool
	firstMouse bool
	lastX      float64
	lastY      float64
}

func newInputState(window *glfw.Window, session *game.Session) *inputState {
	in := &inputState{window: window, session: session, firstMouse: true}
	in.setCaptured(true)
	window.SetKeyCallback(in.onKey)
	window.SetCursorPosCallback(in.onCursorMove)
	window.SetMouseButtonCallback(in.onMouseButton)
	return in
}

func (in *inputState) setCaptured(captured bool) {
	in.captured = captured
	in.firstMouse = true
	if captured {
		in.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		in.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (in *inputState) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		in.setCaptured(!in.captured)
	case glfw.KeyF:
		in.session.ToggleFlying()
	case glfw.KeySpace:
		in.session.Jump()
	case glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5, glfw.Key6, glfw.Key7, glfw.Key8, glfw.Key9:
		in.session.SelectSlot(int(key - glfw.Key1))
	}
}

func (in *inputState) onCursorMove(_ *glfw.Window, xPos, yPos float64) {
	if !in.captured {
		return
	}
	if in.firstMouse {
		in.lastX, in.lastY = xPos, yPos
		in.firstMouse = false
	}
	dx := xPos - in.lastX
	dy := in.lastY - yPos // window y grows downward
	in.lastX, in.lastY = xPos, yPos
	in.session.Look(dx*mouseSensitivity, dy*mouseSensitivity)
}

func (in *inputState) onMouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if !in.captured {
		in.setCaptured(true)
		return
	}
	switch button {
	case glfw.MouseButtonLeft:
		in.session.Attack()
	case glfw.MouseButtonRight:
		in.session.Interact()
	}
}

// sampleHeldKeys reads the held movement keys once per frame.
func (in *inputState) sampleHeldKeys() {
	held := func(k glfw.Key) bool { return in.window.GetKey(k) == glfw.Press }

	forward, right, up := 0, 0, 0
	if held(glfw.KeyW) {
		forward++
	}
	if held(glfw.KeyS) {
		forward--
	}
	if held(glfw.KeyD) {
		right++
	}
	if held(glfw.KeyA) {
		right--
	}
	if held(glfw.KeySpace) {
		up++
	}
	if held(glfw.KeyLeftControl) {
		up--
	}
	in.session.SetStrafe(forward, right, up)
	in.session.SetSprint(held(glfw.KeyLeftShift))
}
