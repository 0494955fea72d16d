package engine

import "github.com/ReagentX/Logria-sub000/internal/render"

// Viewport is the render-facing state spec.md §3 names: screen
// dimensions and the current scroll window. It omits a previous-render
// memo — see DESIGN.md's Open Question decisions for why the raw-
// terminal hot-path skip that memo served doesn't apply here.
type Viewport struct {
	Width             int
	Height            int
	LastRenderableRow int
	CurrentEnd        int
	ScrollState       render.ScrollState
	HighlightMatch    bool
}

// ScrollAction names one of the shared scroll keys (spec.md §4.6).
type ScrollAction int

const (
	ScrollUp ScrollAction = iota
	ScrollDown
	ScrollPageUp
	ScrollPageDown
	ScrollTop
	ScrollBottom
)

// Apply mutates v per the scroll-action rules, given the current
// visible message count.
func (v *Viewport) Apply(action ScrollAction, messageCount int) {
	switch action {
	case ScrollUp:
		v.ScrollState = render.ScrollFree
		v.CurrentEnd = max(1, v.CurrentEnd-1)
	case ScrollDown:
		v.ScrollState = render.ScrollFree
		v.CurrentEnd = min(messageCount, v.CurrentEnd+1)
	case ScrollPageUp:
		v.ScrollState = render.ScrollFree
		for i := 0; i < v.LastRenderableRow; i++ {
			v.CurrentEnd = max(1, v.CurrentEnd-1)
		}
	case ScrollPageDown:
		v.ScrollState = render.ScrollFree
		for i := 0; i < v.LastRenderableRow; i++ {
			v.CurrentEnd = min(messageCount, v.CurrentEnd+1)
		}
	case ScrollTop:
		v.ScrollState = render.ScrollTop
	case ScrollBottom:
		v.ScrollState = render.ScrollBottom
	}
}
