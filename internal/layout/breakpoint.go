// Package layout holds the dashboard chrome: header, sidebar and the
// layout that composes them around page content.
package layout

import "fmt"

// Breakpoint is the responsive prefix at which the viewport counts as wide.
// Below it the sidebar behaves as a drawer with an overlay.
type Breakpoint string

const (
	BreakpointSm  Breakpoint = "sm"
	BreakpointMd  Breakpoint = "md"
	BreakpointLg  Breakpoint = "lg"
	BreakpointXl  Breakpoint = "xl"
	Breakpoint2xl Breakpoint = "2xl"

	DefaultBreakpoint = BreakpointLg
)

// ParseBreakpoint validates s. An empty string yields the default.
func ParseBreakpoint(s string) (Breakpoint, error) {
	switch bp := Breakpoint(s); bp {
	case "":
		return DefaultBreakpoint, nil
	case BreakpointSm, BreakpointMd, BreakpointLg, BreakpointXl, Breakpoint2xl:
		return bp, nil
	default:
		return "", fmt.Errorf("unknown breakpoint %q", s)
	}
}

// At prefixes class so it applies from the breakpoint up.
func (b Breakpoint) At(class string) string {
	return string(b) + ":" + class
}
