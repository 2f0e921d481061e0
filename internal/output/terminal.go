package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// ClearScreen clears the terminal screen and moves cursor to top-left
func ClearScreen(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[2J\033[H")
}

// HideCursor hides the terminal cursor
func HideCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor
func ShowCursor(w io.Writer) {
	_, _ = fmt.Fprint(w, "\033[?25h")
}

// SignalContext returns a context cancelled on interrupt or SIGTERM
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// Watch redraws w every interval until ctx is done. A render error is
// shown on screen and the loop carries on.
func Watch(ctx context.Context, w io.Writer, interval time.Duration, render func(context.Context, io.Writer) error) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	HideCursor(w)
	defer ShowCursor(w)

	for {
		ClearScreen(w)
		_, _ = fmt.Fprintf(w, "Last update: %s | Next refresh in %s | Press Ctrl+C to exit\n\n",
			time.Now().Format("15:04:05"), interval)

		if err := render(ctx, w); err != nil {
			_, _ = fmt.Fprintf(w, "Error: %v\n", err)
		}

		if ctx.Err() == nil {
			select {
			case <-ticker.C:
				continue
			case <-ctx.Done():
			}
		}

		ClearScreen(w)
		_, _ = fmt.Fprintln(w, "Watch mode ended.")
		return nil
	}
}
