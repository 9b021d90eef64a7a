// Package click maps i3bar click events back to the command of the action
// that produced the clicked block. It never runs the command: that is the
// host's job.
package click

import (
	"bytes"

	"github.com/arthur-debert/barfmt/pkg/errors"
	"github.com/arthur-debert/barfmt/pkg/format"
	"github.com/arthur-debert/barfmt/pkg/render/i3bar"
	"github.com/tidwall/gjson"
)

// Event is one click event as sent by i3bar on the status command's stdin.
type Event struct {
	Name      string
	Instance  string
	Button    format.MouseButton
	X         int
	Y         int
	Modifiers []string
}

// ErrNoEvent is returned for the framing lines of i3bar's event stream
// (the opening "[" and blank lines).
var ErrNoEvent = errors.New(errors.ErrClickNoEvent, "line carries no click event")

// ParseEvent decodes a single event line. The leading comma i3bar puts in
// front of every event after the first is accepted.
func ParseEvent(line []byte) (Event, error) {
	line = bytes.TrimSpace(line)
	line = bytes.TrimSpace(bytes.TrimPrefix(line, []byte(",")))
	if len(line) == 0 || bytes.Equal(line, []byte("[")) {
		return Event{}, ErrNoEvent
	}
	if !gjson.ValidBytes(line) {
		return Event{}, errors.New(errors.ErrClickEventInvalid, "click event is not valid JSON").
			WithDetail("line", string(line))
	}

	res := gjson.ParseBytes(line)
	if !res.IsObject() {
		return Event{}, errors.New(errors.ErrClickEventInvalid, "click event is not an object").
			WithDetail("line", string(line))
	}

	button := res.Get("button")
	if !button.Exists() || !format.MouseButton(button.Int()).Valid() {
		return Event{}, errors.Newf(errors.ErrClickEventInvalid, "unsupported button %s", button.Raw).
			WithDetail("line", string(line))
	}

	ev := Event{
		Name:     res.Get("name").String(),
		Instance: res.Get("instance").String(),
		Button:   format.MouseButton(button.Int()),
		X:        int(res.Get("x").Int()),
		Y:        int(res.Get("y").Int()),
	}
	for _, m := range res.Get("modifiers").Array() {
		ev.Modifiers = append(ev.Modifiers, m.String())
	}
	return ev, nil
}

// Target is the clickable surface of one rendered document.
type Target struct {
	Name   string
	Clicks i3bar.ClickTable
}

// NewTarget collects the click table r produces for doc.
func NewTarget(r i3bar.Renderer, doc format.Format) Target {
	return Target{Name: r.Name(), Clicks: r.Clicks(doc)}
}

// Resolve returns the command bound to the clicked block and button. The
// innermost action wins when several enclose the block.
func (t Target) Resolve(ev Event) (string, error) {
	if ev.Name != "" && t.Name != "" && ev.Name != t.Name {
		return "", errors.Newf(errors.ErrClickNotFound, "click on block %q, not %q", ev.Name, t.Name)
	}

	chain, ok := t.Clicks[ev.Instance]
	if !ok {
		return "", errors.Newf(errors.ErrClickNotFound, "no action for instance %q", ev.Instance).
			WithDetail("instance", ev.Instance)
	}
	for _, invoke := range chain {
		if invoke.Button == ev.Button {
			return invoke.Command, nil
		}
	}
	return "", errors.Newf(errors.ErrClickNotFound, "no %s action for instance %q", ev.Button, ev.Instance).
		WithDetail("instance", ev.Instance).
		WithDetail("button", ev.Button.String())
}
