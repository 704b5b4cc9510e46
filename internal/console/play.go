package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/quizcard/internal/prompt"
	"github.com/abhisek/quizcard/internal/session"
)

// Player drives an engine from line input. Commands are a choice number,
// an empty line to confirm, "s" to skip and "q" to stop.
type Player struct {
	engine  *session.Engine
	in      *LineReader
	out     io.Writer
	confirm prompt.Confirmer
}

// NewPlayer creates a Player. The engine's gate should use an animator
// that finishes on its own, since nothing here renders frames.
func NewPlayer(engine *session.Engine, in io.Reader, out io.Writer) *Player {
	lr := NewLineReader(in)
	return &Player{engine: engine, in: lr, out: out, confirm: NewConfirmer(lr, out)}
}

// Play runs quizID to the end. It returns the completion event, or nil
// when the user stopped early.
func (p *Player) Play(ctx context.Context, quizID string) (*session.Completed, error) {
	if err := p.engine.Start(ctx, quizID); err != nil {
		return nil, err
	}
	defer p.engine.Abandon()

	shown := -1
	for p.engine.Active() {
		snap, _ := p.engine.Snapshot()
		if snap.CurrentQuestion != shown {
			p.show(snap)
			shown = snap.CurrentQuestion
		}

		fmt.Fprint(p.out, "> ")
		line, err := p.in.ReadLine(ctx)
		if err != nil {
			return nil, err
		}

		done, err := p.handle(ctx, line)
		if err != nil {
			return nil, err
		}
		if done != nil {
			fmt.Fprintf(p.out, "\nAwesome! You got %d out of %d right\n", done.Score, done.TotalQuestions)
			return done, nil
		}
	}
	fmt.Fprintln(p.out, "Stopped.")
	return nil, nil
}

func (p *Player) show(s session.Session) {
	q := s.Question()
	fmt.Fprintf(p.out, "\n%s  (question %d/%d)\n", s.Quiz.Title, s.CurrentQuestion+1, s.TotalQuestions())
	fmt.Fprintln(p.out, q.Title)
	for i, c := range q.Choices {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, c)
	}
}

func (p *Player) handle(ctx context.Context, line string) (*session.Completed, error) {
	switch strings.ToLower(line) {
	case "q":
		req, err := p.engine.RequestStop()
		if err != nil {
			return nil, err
		}
		return p.ask(ctx, req)
	case "s":
		req, err := p.engine.RequestSkip()
		if err != nil {
			return nil, err
		}
		return p.ask(ctx, req)
	case "":
		return p.submit(ctx)
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(p.out, "Enter a choice number, s to skip or q to stop.")
		return nil, nil
	}
	var invalid *session.InvalidChoiceError
	if _, err := p.engine.Select(n - 1); errors.As(err, &invalid) {
		fmt.Fprintf(p.out, "Pick a number from 1 to %d.\n", invalid.Count)
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return p.submit(ctx)
}

func (p *Player) submit(ctx context.Context) (*session.Completed, error) {
	res, err := p.engine.Confirm()
	if err != nil {
		return nil, err
	}
	if res.Prompt != nil {
		return p.ask(ctx, res.Prompt)
	}
	if res.Ignored() {
		return nil, nil
	}

	if res.Status == session.StatusCorrect {
		fmt.Fprintln(p.out, "Correct!")
	} else {
		snap, _ := p.engine.Snapshot()
		q := snap.Question()
		fmt.Fprintf(p.out, "Wrong. The answer was %s.\n", q.Choices[q.Correct])
	}
	return p.engine.Await(ctx, res.Handle)
}

func (p *Player) ask(ctx context.Context, req *prompt.Request) (*session.Completed, error) {
	return p.engine.Ask(ctx, p.confirm, req)
}
