package quiz

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcard/internal/feedback"
	"github.com/abhisek/quizcard/internal/gesture"
	"github.com/abhisek/quizcard/internal/history"
	"github.com/abhisek/quizcard/internal/prompt"
	"github.com/abhisek/quizcard/internal/router"
	"github.com/abhisek/quizcard/internal/screen"
	"github.com/abhisek/quizcard/internal/session"
	"github.com/abhisek/quizcard/internal/ui/components"
)

const (
	frameInterval = time.Second / 30

	// nudgeStep is the drag added by one keyboard nudge.
	nudgeStep = -70.0

	// nudgeIdle ends a keyboard drag.
	nudgeIdle = 350 * time.Millisecond
)

// Deps are the collaborators of a quiz screen.
type Deps struct {
	Engine  *session.Engine
	Gate    *feedback.Gate
	Gesture *gesture.Navigator
	Outbox  *router.Outbox
}

// QuizScreen runs one quiz attempt.
type QuizScreen struct {
	quizID  string
	engine  *session.Engine
	gate    *feedback.Gate
	gesture *gesture.Navigator
	outbox  *router.Outbox
	keys    keyMap
	spinner spinner.Model

	cursor int
	dialog *components.Dialog
	errMsg string

	dragging   bool
	dragStartX int
	nudge      float64
	nudgeSeq   int
	ticking    bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for quizID.
func New(quizID string, deps Deps) *QuizScreen {
	return &QuizScreen{
		quizID:  quizID,
		engine:  deps.Engine,
		gate:    deps.Gate,
		gesture: deps.Gesture,
		outbox:  deps.Outbox,
		keys:    defaultKeys(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(
		s.spinner.Tick,
		func() tea.Msg { return quizStartMsg{} },
	)
}

func (s *QuizScreen) Title() string {
	if snap, ok := s.engine.Snapshot(); ok {
		return snap.Quiz.Title
	}
	return "Quiz"
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizStartMsg:
		return s.handleStart()

	case spinner.TickMsg:
		if s.engine.Active() || s.errMsg != "" {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case feedbackSettledMsg:
		return s.handleSettled(msg)

	case frameMsg:
		if s.moving() {
			return s, s.frame()
		}
		s.ticking = false
		return s, nil

	case nudgeEndMsg:
		if msg.seq != s.nudgeSeq || s.nudge == 0 {
			return s, nil
		}
		return s.release(s.nudge)

	case components.DialogResultMsg:
		return s.handleDialogResult(msg)

	case tea.MouseClickMsg:
		return s.handleMouseDown(msg.Mouse())

	case tea.MouseMotionMsg:
		return s.handleMouseMove(msg.Mouse())

	case tea.MouseReleaseMsg:
		return s.handleMouseUp(msg.Mouse())

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleStart() (screen.Screen, tea.Cmd) {
	if err := s.engine.Start(context.Background(), s.quizID); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.cursor = 0
	s.gesture.Reset()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.dialog != nil {
		var cmd tea.Cmd
		*s.dialog, cmd = s.dialog.Update(msg)
		return s, cmd
	}

	snap, ok := s.engine.Snapshot()
	if !ok {
		return s, nil
	}
	choices := len(snap.Question().Choices)

	switch {
	case key.Matches(msg, s.keys.Stop):
		req, err := s.engine.RequestStop()
		if err == nil {
			s.openDialog(req)
		}
		return s, nil

	case key.Matches(msg, s.keys.Skip):
		req, _ := s.engine.RequestSkip()
		s.openDialog(req)
		return s, nil

	case key.Matches(msg, s.keys.Confirm):
		return s.confirm()

	case key.Matches(msg, s.keys.Up):
		s.selectChoice(s.cursor - 1)
		return s, nil

	case key.Matches(msg, s.keys.Down):
		s.selectChoice(s.cursor + 1)
		return s, nil

	case key.Matches(msg, s.keys.Nudge):
		return s.handleNudge()
	}

	if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		if i := int(k[0] - '1'); i < choices {
			s.selectChoice(i)
		}
	}
	return s, nil
}

// selectChoice moves the cursor to i and picks it. Out of range indices and
// input while feedback plays are ignored.
func (s *QuizScreen) selectChoice(i int) {
	if ok, err := s.engine.Select(i); ok && err == nil {
		s.cursor = i
	}
}

func (s *QuizScreen) confirm() (screen.Screen, tea.Cmd) {
	res, err := s.engine.Confirm()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if res.Prompt != nil {
		s.openDialog(res.Prompt)
		return s, nil
	}
	if res.Handle == nil {
		return s, nil
	}
	return s, tea.Batch(waitFeedback(res.Handle), s.startFrames())
}

func waitFeedback(h *feedback.Handle) tea.Cmd {
	return func() tea.Msg {
		err := h.Wait(context.Background())
		return feedbackSettledMsg{handle: h, err: err}
	}
}

func (s *QuizScreen) handleSettled(msg feedbackSettledMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil || msg.handle != s.engine.Pending() {
		return s, nil
	}
	return s, s.settle()
}

// settle commits the confirmed answer. Completion is routed by the engine's
// handlers; a failed history write was already reported as a warning.
func (s *QuizScreen) settle() tea.Cmd {
	_, err := s.engine.Settle(context.Background())
	if errors.Is(err, session.ErrPromptPending) {
		return nil
	}
	var perr *history.PersistError
	if err != nil && !errors.As(err, &perr) {
		s.errMsg = err.Error()
		return nil
	}
	s.cursor = 0
	s.gesture.Reset()
	return nil
}

func (s *QuizScreen) openDialog(req *prompt.Request) {
	if req == nil {
		return
	}
	d := components.NewDialog(*req)
	s.dialog = &d
}

func (s *QuizScreen) handleDialogResult(msg components.DialogResultMsg) (screen.Screen, tea.Cmd) {
	s.dialog = nil
	ev, err := s.engine.Resolve(context.Background(), msg.ID, msg.Label)
	var perr *history.PersistError
	if err != nil && !errors.As(err, &perr) {
		s.errMsg = err.Error()
		return s, nil
	}
	if ev == nil && !s.engine.Active() {
		// Stopped.
		s.outbox.GoBack()
		return s, nil
	}
	if ev == nil {
		s.cursor = 0
		snap, ok := s.engine.Snapshot()
		if ok && snap.HasSelection() {
			s.cursor = snap.Selected
		}
		if ok && snap.Status == session.StatusNeutral && !snap.HasSelection() {
			s.gesture.Reset()
		}
	}
	return s, nil
}

func (s *QuizScreen) handleMouseDown(m tea.Mouse) (screen.Screen, tea.Cmd) {
	if m.Button != tea.MouseLeft || !s.acceptsGesture() {
		return s, nil
	}
	s.dragging = true
	s.dragStartX = m.X
	s.gesture.Update(0)
	return s, s.startFrames()
}

func (s *QuizScreen) handleMouseMove(m tea.Mouse) (screen.Screen, tea.Cmd) {
	if !s.dragging {
		return s, nil
	}
	s.gesture.Update(s.translation(m.X))
	return s, nil
}

func (s *QuizScreen) handleMouseUp(m tea.Mouse) (screen.Screen, tea.Cmd) {
	if !s.dragging {
		return s, nil
	}
	s.dragging = false
	return s.release(s.translation(m.X))
}

func (s *QuizScreen) translation(x int) float64 {
	return float64(x-s.dragStartX) * components.CellWidthPx
}

func (s *QuizScreen) handleNudge() (screen.Screen, tea.Cmd) {
	if !s.acceptsGesture() {
		return s, nil
	}
	s.nudge += nudgeStep
	s.nudgeSeq++
	s.gesture.Update(s.nudge)

	seq := s.nudgeSeq
	return s, tea.Batch(
		tea.Tick(nudgeIdle, func(time.Time) tea.Msg { return nudgeEndMsg{seq: seq} }),
		s.startFrames(),
	)
}

// release ends the current gesture. The card always springs back; a drag
// past the threshold asks before skipping.
func (s *QuizScreen) release(translation float64) (screen.Screen, tea.Cmd) {
	s.nudge = 0
	rel := s.gesture.End(translation)
	if rel.SkipRequested {
		req, _ := s.engine.RequestSkip()
		s.openDialog(req)
	}
	return s, s.startFrames()
}

func (s *QuizScreen) acceptsGesture() bool {
	return s.engine.Active() && s.dialog == nil && s.errMsg == ""
}

func (s *QuizScreen) moving() bool {
	return s.gate.Busy() || s.gesture.Dragging() || s.gesture.Settling()
}

func (s *QuizScreen) startFrames() tea.Cmd {
	if s.ticking {
		return nil
	}
	s.ticking = true
	return s.frame()
}

func (s *QuizScreen) frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}
