package input

import "github.com/veandco/go-sdl2/sdl"

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionShowInfo
	ActionScreenshot
	ActionResetCamera
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionShowInfo:
		return "show-info"
	case ActionScreenshot:
		return "screenshot"
	case ActionResetCamera:
		return "reset-camera"
	default:
		return "none"
	}
}

// Bindings maps scancodes to actions.
type Bindings map[sdl.Scancode]Action

// DefaultBindings returns the viewer's key map.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_ESCAPE: ActionQuit,
		sdl.SCANCODE_I:      ActionShowInfo,
		sdl.SCANCODE_F12:    ActionScreenshot,
		sdl.SCANCODE_R:      ActionResetCamera,
	}
}

// Actions returns the actions triggered by key presses in events, in order.
// Auto-repeat presses are ignored.
func (b Bindings) Actions(events []Event) []Action {
	var out []Action
	for _, e := range events {
		if e.Type != EventKeyDown || e.Repeat {
			continue
		}
		if a, ok := b[e.Key]; ok {
			out = append(out, a)
		}
	}
	return out
}
