package tui

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	env "github.com/muesli/termenv"

	"github.com/vancomm/fifteen/internal/fifteen"
)

// Model renders a session and translates terminal input into engine
// events. It holds no rules of its own; every change of game state goes
// through [fifteen.Update].
type Model struct {
	state  fifteen.State
	rnd    *rand.Rand
	logger *slog.Logger
	keys   KeyMap

	width, height int

	originalBg env.Color
	output     *env.Output
}

func NewModel(dim int, rnd *rand.Rand, logger *slog.Logger) (Model, error) {
	state, err := fifteen.Update(fifteen.NewState(dim), fifteen.EventStart{}, rnd)
	if err != nil {
		return Model{}, fmt.Errorf("unable to start a session: %w", err)
	}
	return Model{
		state:      state,
		rnd:        rnd,
		logger:     logger,
		keys:       Keys,
		originalBg: env.BackgroundColor(),
		output:     env.DefaultOutput(),
	}, nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type setBackgroundColorMsg struct{ color env.Color }

func setBackgroundColor(c env.Color) tea.Cmd {
	return func() tea.Msg {
		return setBackgroundColorMsg{color: c}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		setBackgroundColor(env.RGBColor("#1a1b26")),
		tick(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case setBackgroundColorMsg:
		m.output.SetBackgroundColor(msg.color)
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m = m.apply(fifteen.EventTick{})
		if m.state.Status == fifteen.Running {
			return m, tick()
		}
		// The clock stays frozen until some event resumes play.
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i, ok := m.cellAt(msg.X, msg.Y); ok {
				m = m.apply(fifteen.EventSelect{Index: i})
			}
		}
		return m, nil

	case tea.KeyMsg:
		was := m.state.Status
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Sequence(
				setBackgroundColor(m.originalBg),
				tea.Quit,
			)
		case key.Matches(msg, m.keys.Up):
			m = m.apply(fifteen.EventMove{Direction: fifteen.Up})
		case key.Matches(msg, m.keys.Down):
			m = m.apply(fifteen.EventMove{Direction: fifteen.Down})
		case key.Matches(msg, m.keys.Left):
			m = m.apply(fifteen.EventMove{Direction: fifteen.Left})
		case key.Matches(msg, m.keys.Right):
			m = m.apply(fifteen.EventMove{Direction: fifteen.Right})
		case key.Matches(msg, m.keys.New):
			m = m.apply(fifteen.EventStart{})
		case key.Matches(msg, m.keys.Restart):
			m = m.apply(fifteen.EventRestart{})
		case key.Matches(msg, m.keys.Dimension):
			n := int(msg.String()[0] - '0')
			m = m.apply(fifteen.EventResize{Dim: n})
		}
		if was != fifteen.Running && m.state.Status == fifteen.Running {
			return m, tick()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) apply(ev fifteen.Event) Model {
	next, err := fifteen.Update(m.state, ev, m.rnd)
	if err != nil {
		m.logger.Error("event rejected",
			slog.String("event", fmt.Sprintf("%T", ev)), slog.Any("error", err))
		return m
	}
	m.state = next
	return m
}

// cellAt maps a terminal click position onto a board index. Tiles are laid
// out in a fixed-size grid anchored at (boardLeft, boardTop), so the
// mapping is plain arithmetic.
func (m Model) cellAt(x, y int) (int, bool) {
	x -= boardLeft
	y -= boardTop
	if x < 0 || y < 0 {
		return 0, false
	}
	col, row := x/cellWidth, y/cellHeight
	n := m.state.Dim
	if row >= n || col >= n {
		return 0, false
	}
	return row*n + col, true
}
