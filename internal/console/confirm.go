// Package console runs quizzes and confirmations on a plain terminal, one
// line of input at a time.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizcard/internal/prompt"
)

// ErrClosed is returned when input ends before an answer is given.
var ErrClosed = errors.New("input closed")

// LineReader reads trimmed lines from an io.Reader.
type LineReader struct {
	sc *bufio.Scanner
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{sc: bufio.NewScanner(r)}
}

// ReadLine returns the next line without surrounding space.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", err
		}
		return "", ErrClosed
	}
	return strings.TrimSpace(l.sc.Text()), nil
}

// Confirmer asks prompts on out and reads answers from in. An empty line
// picks the cancel option.
type Confirmer struct {
	in  *LineReader
	out io.Writer
}

var _ prompt.Confirmer = (*Confirmer)(nil)

// NewConfirmer creates a Confirmer.
func NewConfirmer(in *LineReader, out io.Writer) *Confirmer {
	return &Confirmer{in: in, out: out}
}

func (c *Confirmer) Confirm(ctx context.Context, req prompt.Request) (string, error) {
	labels := make([]string, len(req.Options))
	for i, o := range req.Options {
		labels[i] = o.Label
	}
	for {
		fmt.Fprintf(c.out, "%s [%s]: ", req.Message, strings.Join(labels, "/"))
		line, err := c.in.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if line == "" {
			return req.CancelLabel(), nil
		}
		for _, l := range labels {
			if strings.EqualFold(line, l) || strings.EqualFold(line, l[:1]) {
				return l, nil
			}
		}
		fmt.Fprintf(c.out, "Please answer %s.\n", strings.Join(labels, " or "))
	}
}
