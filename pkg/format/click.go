package format

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/barfmt/pkg/errors"
)

// MouseButton identifies a pointer button. Values are the X11 button numbers
// every supported bar uses on the wire.
type MouseButton int

const (
	ButtonLeft       MouseButton = 1
	ButtonMiddle     MouseButton = 2
	ButtonRight      MouseButton = 3
	ButtonScrollUp   MouseButton = 4
	ButtonScrollDown MouseButton = 5
)

// Buttons lists every supported button in wire order.
func Buttons() []MouseButton {
	return []MouseButton{ButtonLeft, ButtonMiddle, ButtonRight, ButtonScrollUp, ButtonScrollDown}
}

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonScrollUp:
		return "scroll-up"
	case ButtonScrollDown:
		return "scroll-down"
	default:
		return "unknown"
	}
}

// Valid reports whether b is one of the supported buttons.
func (b MouseButton) Valid() bool {
	return b >= ButtonLeft && b <= ButtonScrollDown
}

// ParseMouseButton accepts a button name or its number.
func ParseMouseButton(s string) (MouseButton, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	switch name {
	case "left":
		return ButtonLeft, nil
	case "middle":
		return ButtonMiddle, nil
	case "right":
		return ButtonRight, nil
	case "scroll-up", "scrollup", "wheel-up":
		return ButtonScrollUp, nil
	case "scroll-down", "scrolldown", "wheel-down":
		return ButtonScrollDown, nil
	}
	if n, err := strconv.Atoi(name); err == nil && MouseButton(n).Valid() {
		return MouseButton(n), nil
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "unknown mouse button: %q", s)
}

// ClickAction is what the host does when a clickable span is clicked.
type ClickAction interface {
	isClickAction()
}

// Invoke asks the host to run Command when Button is pressed. The command is
// opaque to barfmt and never executed by it.
type Invoke struct {
	Button  MouseButton
	Command string
}

func (Invoke) isClickAction() {}

// ShellCommand builds an Invoke action.
func ShellCommand(button MouseButton, command string) ClickAction {
	return Invoke{Button: button, Command: command}
}
