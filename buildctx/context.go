// Package buildctx provides optional logging and timing instrumentation for
// a contour build, in the style of Recast's BuildContext: a concrete,
// dependency-free implementation that a caller may pass to Build, or omit
// entirely.
package buildctx

import (
	"fmt"
	"time"
)

// Category classifies a logged message.
type Category int

const (
	Progress Category = 1 + iota // A progress log entry.
	Warning                      // A warning log entry.
	Error                        // An error log entry.
)

// Label identifies one of the named timers tracked during a build.
type Label int

const (
	TimerBuildTotal Label = iota
	TimerRowChanges
	TimerAutomaton
	TimerHierarchy
	numTimers
)

const maxMessages = 1000

// Context accumulates log messages and timer durations for one build. The
// zero value is not usable; construct with New.
//
// Context does not itself write anywhere (no file, no stdout): callers that
// want to see the messages call Messages() after the build, or Log a
// Category themselves to drive a UI. This mirrors Recast's BuildContext,
// which likewise defers message delivery to the caller.
type Context struct {
	enabled bool

	startTime [numTimers]time.Time
	accTime   [numTimers]time.Duration
	running   [numTimers]bool

	messages [maxMessages]string
	nmsg     int
}

// New returns a Context with logging and timers enabled or disabled
// according to state.
func New(state bool) *Context {
	return &Context{enabled: state}
}

// Enable turns logging and timing on or off.
func (c *Context) Enable(state bool) { c.enabled = state }

// Enabled reports whether the context is currently recording.
func (c *Context) Enabled() bool { return c.enabled }

// Log appends a formatted message under the given category. A no-op when
// the context is disabled or the message buffer is full.
func (c *Context) Log(cat Category, format string, args ...interface{}) {
	if c == nil || !c.enabled || c.nmsg >= maxMessages {
		return
	}
	prefix := ""
	switch cat {
	case Warning:
		prefix = "Warning: "
	case Error:
		prefix = "Error: "
	}
	c.messages[c.nmsg] = prefix + fmt.Sprintf(format, args...)
	c.nmsg++
}

// Messages returns every message logged so far, in order.
func (c *Context) Messages() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.messages[:c.nmsg]...)
}

// StartTimer begins (or resumes) the named timer.
func (c *Context) StartTimer(label Label) {
	if c == nil || !c.enabled {
		return
	}
	c.startTime[label] = time.Now()
	c.running[label] = true
}

// StopTimer accumulates elapsed time into the named timer.
func (c *Context) StopTimer(label Label) {
	if c == nil || !c.enabled || !c.running[label] {
		return
	}
	c.accTime[label] += time.Since(c.startTime[label])
	c.running[label] = false
}

// ElapsedTime returns the accumulated duration of the named timer, or -1 if
// timers are disabled. A timer that was never started reports 0.
func (c *Context) ElapsedTime(label Label) time.Duration {
	if c == nil || !c.enabled {
		return -1
	}
	return c.accTime[label]
}

// ResetLog discards every recorded message.
func (c *Context) ResetLog() {
	if c == nil {
		return
	}
	c.nmsg = 0
}

// ResetTimers clears every accumulated timer.
func (c *Context) ResetTimers() {
	if c == nil {
		return
	}
	c.startTime = [numTimers]time.Time{}
	c.accTime = [numTimers]time.Duration{}
	c.running = [numTimers]bool{}
}
