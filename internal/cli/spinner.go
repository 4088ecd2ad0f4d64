package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Spinner animates a status line on stderr while a batch runs. When
// progress is reported through [Spinner.Update], the line also shows how
// many tasks have finished.
type Spinner struct {
	w       io.Writer
	message string
	done    int
	total   int
	width   int // widest line written, for clearing
	ctx     context.Context
	cancel  context.CancelFunc
	quit    chan struct{}
	stopped chan struct{}
	once    sync.Once
	mu      sync.Mutex
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// newSpinner creates a spinner that stops when ctx is cancelled.
func newSpinner(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       os.Stderr,
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the animation.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.quit:
				return
			case <-ticker.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// Update records that done of total tasks have finished.
// It is safe to call from worker goroutines.
func (s *Spinner) Update(done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done, s.total = done, total
}

func (s *Spinner) line() string {
	if s.total == 0 {
		return s.message
	}
	return fmt.Sprintf("%s %d/%d", s.message, s.done, s.total)
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text := s.line()
	s.width = max(s.width, len(text)+2)
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(text))
}

// Stop halts the animation and clears the line. Calling Stop again is a no-op.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.quit)
		<-s.stopped
		s.cancel()
		s.clearLine()
	})
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", max(s.width, len(s.message)+4)))
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner ended because its context was
// cancelled rather than through Stop.
func (s *Spinner) Cancelled() bool {
	select {
	case <-s.quit:
		return false
	default:
		return s.ctx.Err() != nil
	}
}
