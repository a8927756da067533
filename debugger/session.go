package debugger

import "strings"

// Session is a demonstration stepping session over a source buffer. It
// moves a current-line marker the way the step buttons expect; it does
// not attach to a real debugger.
type Session struct {
	breakpoints *Breakpoints
	currentLine int
	running     bool
}

// NewSession returns a stopped session over the given breakpoints.
func NewSession(breakpoints *Breakpoints) *Session {
	return &Session{breakpoints: breakpoints}
}

// Running reports whether the session is active.
func (s *Session) Running() bool {
	return s.running
}

// CurrentLine returns the highlighted execution line, or 0 when the
// session is stopped.
func (s *Session) CurrentLine() int {
	if !s.running {
		return 0
	}
	return s.currentLine
}

// Start begins the session at the first non-empty line of text.
func (s *Session) Start(text string) {
	s.running = true
	s.currentLine = 0
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			s.currentLine = i + 1
			break
		}
	}
}

// Stop ends the session and clears the current line.
func (s *Session) Stop() {
	s.running = false
	s.currentLine = 0
}

// StepInto advances one line.
func (s *Session) StepInto() {
	if s.running && s.currentLine > 0 {
		s.currentLine++
	}
}

// StepOver advances past the current call site.
func (s *Session) StepOver() {
	if s.running && s.currentLine > 0 {
		s.currentLine += 2
	}
}

// StepOut leaves the current function.
func (s *Session) StepOut() {
	if s.running && s.currentLine > 0 {
		s.currentLine += 5
	}
}

// Continue runs to the next breakpoint below the current line, or stops
// the session when none remains.
func (s *Session) Continue() {
	if !s.running || s.currentLine == 0 {
		return
	}
	for _, bp := range s.breakpoints.All() {
		if bp > s.currentLine {
			s.currentLine = bp
			return
		}
	}
	s.Stop()
}
