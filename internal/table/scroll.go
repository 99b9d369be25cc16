package table

import (
	"log/slog"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultSettleDelay is how long scrolling must stop before a ScrollMsg
// is emitted.
const DefaultSettleDelay = 150 * time.Millisecond

var lastTrackerID int64

func nextTrackerID() int {
	return int(atomic.AddInt64(&lastTrackerID, 1))
}

// Viewport is the horizontally scrollable region of a table, measured in
// terminal cells.
type Viewport struct {
	ContentWidth int // full width of the scrollable columns
	ClientWidth  int // visible width
}

// MaxScroll is the largest valid scroll offset.
func (v *Viewport) MaxScroll() int {
	if v == nil {
		return 0
	}
	return max(v.ContentWidth-v.ClientWidth, 0)
}

// ScrollMsg summarises a burst of scroll events once it has settled.
type ScrollMsg struct {
	ScrollLeft  int
	ScrollWidth int
	ClientWidth int
}

type scrollSettleMsg struct {
	id  int
	tag int
}

// ScrollTracker follows the horizontal offset of one Viewport.
//
// Every scroll updates the offset immediately; a settle timer is re-armed
// on each event and, once it fires without a newer event, the tracker
// leaves the scrolling state and emits a single ScrollMsg.
type ScrollTracker struct {
	id    int
	tag   int
	delay time.Duration

	viewport   *Viewport
	scrollLeft int
	scrolling  bool

	subscribers []func(ScrollMsg)
}

// NewScrollTracker creates a detached tracker. A non-positive delay uses
// DefaultSettleDelay.
func NewScrollTracker(delay time.Duration) *ScrollTracker {
	if delay <= 0 {
		delay = DefaultSettleDelay
	}
	return &ScrollTracker{
		id:    nextTrackerID(),
		delay: delay,
	}
}

// Attach binds the tracker to vp. A nil viewport leaves it detached.
func (t *ScrollTracker) Attach(vp *Viewport) {
	if vp == nil {
		return
	}
	t.viewport = vp
	t.scrollLeft = min(t.scrollLeft, vp.MaxScroll())
}

// Detach unbinds the viewport and cancels any pending settle timer.
func (t *ScrollTracker) Detach() {
	t.viewport = nil
	t.scrolling = false
	t.tag++
}

// Attached reports whether a viewport is bound.
func (t *ScrollTracker) Attached() bool {
	return t.viewport != nil
}

// Subscribe registers fn to receive every settled ScrollMsg.
func (t *ScrollTracker) Subscribe(fn func(ScrollMsg)) {
	t.subscribers = append(t.subscribers, fn)
}

// ScrollLeft is the current offset. It is updated synchronously on every
// scroll event.
func (t *ScrollTracker) ScrollLeft() int {
	return t.scrollLeft
}

// IsScrolling is true between a scroll event and the settle timer.
func (t *ScrollTracker) IsScrolling() bool {
	return t.scrolling
}

// Progress returns the scroll position as a fraction in [0, 1].
func (t *ScrollTracker) Progress() float64 {
	maxScroll := t.viewport.MaxScroll()
	if maxScroll == 0 {
		return 0
	}
	return min(float64(t.scrollLeft)/float64(maxScroll), 1)
}

// Scroll records a scroll event at offset and re-arms the settle timer.
// The returned command must be run by the Bubble Tea program.
func (t *ScrollTracker) Scroll(offset int) tea.Cmd {
	if t.viewport == nil {
		return nil
	}
	t.scrollLeft = offset
	t.scrolling = true
	t.tag++

	id, tag := t.id, t.tag
	return tea.Tick(t.delay, func(time.Time) tea.Msg {
		return scrollSettleMsg{id: id, tag: tag}
	})
}

// ScrollTo moves to pos, clamped to the viewport. A target equal to the
// current offset is not a scroll event and returns nil.
func (t *ScrollTracker) ScrollTo(pos int) tea.Cmd {
	if t.viewport == nil {
		return nil
	}
	pos = max(min(pos, t.viewport.MaxScroll()), 0)
	if pos == t.scrollLeft {
		return nil
	}
	return t.Scroll(pos)
}

// ScrollBy moves by delta cells.
func (t *ScrollTracker) ScrollBy(delta int) tea.Cmd {
	return t.ScrollTo(t.scrollLeft + delta)
}

// ScrollToStart is ScrollTo(0).
func (t *ScrollTracker) ScrollToStart() tea.Cmd {
	return t.ScrollTo(0)
}

// ScrollToEnd scrolls to the last column.
func (t *ScrollTracker) ScrollToEnd() tea.Cmd {
	return t.ScrollTo(t.viewport.MaxScroll())
}

// Update consumes settle timer messages. It returns the emitted ScrollMsg
// and true only for the timer of the latest scroll event while attached.
func (t *ScrollTracker) Update(msg tea.Msg) (ScrollMsg, bool) {
	settle, ok := msg.(scrollSettleMsg)
	if !ok || settle.id != t.id || settle.tag != t.tag || t.viewport == nil {
		return ScrollMsg{}, false
	}

	t.scrolling = false
	out := ScrollMsg{
		ScrollLeft:  t.scrollLeft,
		ScrollWidth: t.viewport.ContentWidth,
		ClientWidth: t.viewport.ClientWidth,
	}
	slog.Debug("scroll settled", "scroll_left", out.ScrollLeft, "scroll_width", out.ScrollWidth, "client_width", out.ClientWidth)

	for _, fn := range t.subscribers {
		fn(out)
	}
	return out, true
}
