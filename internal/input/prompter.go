// Package input collects query parameters from the user. Collectors loop
// until the input validates and are driven through the Prompter interface
// so they can run against a terminal UI, a plain line reader, or a script.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAborted is returned when the user cancels a prompt
var ErrAborted = errors.New("input aborted")

// ErrNoDefault is returned by Defaults when a prompt has no default value
var ErrNoDefault = errors.New("no default value")

// Prompter asks the user for a single value
type Prompter interface {
	// Choose asks for one of candidates, pre-filled with def
	Choose(label, def string, candidates []string) (string, error)
	// Read asks for free text, pre-filled with def
	Read(label, def string) (string, error)
	// Warn shows a short-lived message about rejected input
	Warn(msg string)
}

// LinePrompter reads answers line by line, for pipes and dumb terminals
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompter prompts on w and reads answers from r
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

// maxListed caps how many candidates are printed next to a prompt
const maxListed = 8

// Choose prints the prompt with up to maxListed candidates
func (p *LinePrompter) Choose(label, def string, candidates []string) (string, error) {
	if len(candidates) > 0 && len(candidates) <= maxListed {
		_, _ = fmt.Fprintf(p.w, "  (%s)\n", strings.Join(candidates, ", "))
	}
	return p.Read(label, def)
}

// Read prints the prompt and returns the trimmed line, or def when empty
func (p *LinePrompter) Read(label, def string) (string, error) {
	if def != "" {
		_, _ = fmt.Fprintf(p.w, "%s [%s]: ", label, def)
	} else {
		_, _ = fmt.Fprintf(p.w, "%s: ", label)
	}

	line, err := p.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(p.w)
			return "", ErrAborted
		}
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// Warn prints msg on its own line
func (p *LinePrompter) Warn(msg string) {
	_, _ = fmt.Fprintf(p.w, "! %s\n", msg)
}

// Defaults answers every prompt with its default. It never loops: once a
// default has been rejected the next prompt fails.
type Defaults struct {
	rejected string
}

// Choose returns def
func (d *Defaults) Choose(label, def string, _ []string) (string, error) {
	return d.Read(label, def)
}

// Read returns def, or an error when there is none or the last one was
// rejected
func (d *Defaults) Read(label, def string) (string, error) {
	if d.rejected != "" {
		msg := d.rejected
		d.rejected = ""
		return "", errors.New(msg)
	}
	if def == "" {
		return "", fmt.Errorf("%s: %w", strings.ToLower(label), ErrNoDefault)
	}
	return def, nil
}

// Warn records msg so the following prompt fails with it
func (d *Defaults) Warn(msg string) {
	d.rejected = msg
}
