package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizcard/internal/catalog"
	"github.com/abhisek/quizcard/internal/config"
	"github.com/abhisek/quizcard/internal/feedback"
	"github.com/abhisek/quizcard/internal/history"
	"github.com/abhisek/quizcard/internal/router"
	"github.com/abhisek/quizcard/internal/screen"
	"github.com/abhisek/quizcard/internal/screens/finish"
	historyscreen "github.com/abhisek/quizcard/internal/screens/history"
	"github.com/abhisek/quizcard/internal/screens/home"
	"github.com/abhisek/quizcard/internal/screens/quiz"
	"github.com/abhisek/quizcard/internal/session"
	"github.com/abhisek/quizcard/internal/store"
	"github.com/abhisek/quizcard/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Catalog  catalog.Catalog
	History  store.HistoryRepo
	Settings config.Settings

	// Animator drives feedback and rebound animations. Defaults to a
	// wall-clock animator.
	Animator feedback.Animator
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	outbox  *router.Outbox
	warning string
	width   int
	height  int
}

// NewAppModel creates a new AppModel with the home screen.
func NewAppModel(opts Options) AppModel {
	if opts.Animator == nil {
		opts.Animator = feedback.NewTimedAnimator()
	}
	outbox := &router.Outbox{}
	return AppModel{
		router: router.New(home.New(opts.Catalog, opts.History), routes(opts, outbox)),
		outbox: outbox,
	}
}

// routes builds the route table. Every quiz gets its own engine, gate and
// navigator so nothing from a previous attempt leaks into the next one.
func routes(opts Options, outbox *router.Outbox) router.Routes {
	return router.Routes{
		home.QuizRoute: {
			Mode: router.ModePush,
			Build: func(params map[string]string) (screen.Screen, error) {
				id := params["id"]
				if id == "" {
					return nil, fmt.Errorf("quiz route: missing id")
				}
				handlers := []session.CompletionHandler{router.NewCompletionRouter(outbox)}
				if opts.History != nil {
					rec := history.NewRecorder(opts.History, history.WithWarn(outbox.Warn))
					handlers = append([]session.CompletionHandler{rec}, handlers...)
				}
				gate := opts.Settings.Gate(opts.Animator)
				engine := session.NewEngine(opts.Catalog, gate, session.WithCompletionHandlers(handlers...))
				return quiz.New(id, quiz.Deps{
					Engine:  engine,
					Gate:    gate,
					Gesture: opts.Settings.Navigator(),
					Outbox:  outbox,
				}), nil
			},
		},
		router.FinishRoute: {
			Mode:  router.ModeReplace,
			Build: finish.FromParams,
		},
		home.HistoryRoute: {
			Mode: router.ModePush,
			Build: func(map[string]string) (screen.Screen, error) {
				if opts.History == nil {
					return nil, fmt.Errorf("history is not available")
				}
				return historyscreen.New(opts.History), nil
			},
		},
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.WarnMsg:
		if msg.Err != nil {
			m.warning = msg.Err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		m.warning = ""
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(cmd, m.outbox.Drain())
}

// Warning returns the footer warning, if any.
func (m AppModel) Warning() string {
	return m.warning
}

// Active returns the screen on top of the stack.
func (m AppModel) Active() screen.Screen {
	return m.router.Active()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		return v
	}

	if notice, small := layout.TooSmall(m.width, m.height); small {
		v.SetContent(notice)
		return v
	}

	active := m.router.Active()
	title := ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
	}
	hints = append(hints, layout.KeyHint{Key: "ctrl+c", Description: "quit"})

	frame := layout.NewFrame(m.width, m.height, title, hints, m.warning)
	v.SetContent(frame.Render(m.router.View(m.width, frame.BodyHeight())))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(NewAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
