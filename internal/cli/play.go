package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_render"
	"github.com/SeamusWaldron/gocube_render/internal/render"
	"github.com/SeamusWaldron/gocube_render/pkg/notation"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var playInterval time.Duration

var playCmd = &cobra.Command{
	Use:   "play [facelets|@state]",
	Short: "Step through the solution of a 3x3 state",
	Long: `Solve a 3x3 state and step through the solution move by move in the
terminal.

Keys:
  SPACE/n  next move
  b        previous move
  a        autoplay
  r        back to the start
  q        quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().DurationVar(&playInterval, "interval", 700*time.Millisecond, "Delay between moves in autoplay")
	playCmd.Flags().DurationVar(&solveTimeout, "timeout", 30*time.Second, "Give up solving after this long")
	playCmd.Flags().IntVar(&solveMaxLength, "max-length", 24, "Longest solution to search for")
}

func runPlay(cmd *cobra.Command, args []string) error {
	in, err := resolveState(args)
	if err != nil {
		return err
	}

	tokens, err := solveState(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("failed to solve: %w", err)
	}
	moves, err := notation.ParseMoves(strings.Join(tokens, " "))
	if err != nil {
		return err
	}
	states, err := stateSequence(in.Facelets, moves)
	if err != nil {
		return err
	}

	c, err := newCube(3)
	if err != nil {
		return err
	}

	model := newPlayModel(c, moves, states, playInterval)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

// playModel steps a cube through a list of states.
type playModel struct {
	cube     *gocube.Cube
	moves    []notation.Move
	states   []string
	index    int
	interval time.Duration
	autoplay bool
	err      error
	quitting bool
}

type playTickMsg time.Time

func newPlayModel(c *gocube.Cube, moves []notation.Move, states []string, interval time.Duration) *playModel {
	m := &playModel{
		cube:     c,
		moves:    moves,
		states:   states,
		interval: interval,
	}
	m.show(0)
	return m
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return playTickMsg(t)
	})
}

func (m *playModel) show(i int) {
	if i < 0 || i >= len(m.states) {
		return
	}
	if err := m.cube.SetState(m.states[i]); err != nil {
		m.err = err
		return
	}
	m.index = i
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right":
			m.autoplay = false
			m.show(m.index + 1)

		case "b", "left":
			m.autoplay = false
			m.show(m.index - 1)

		case "r":
			m.autoplay = false
			m.show(0)

		case "a":
			m.autoplay = !m.autoplay
			if m.autoplay {
				return m, m.tick()
			}
		}

	case playTickMsg:
		if !m.autoplay {
			return m, nil
		}
		if m.index >= len(m.states)-1 {
			m.autoplay = false
			return m, nil
		}
		m.show(m.index + 1)
		return m, m.tick()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Solution Playback"))
	b.WriteString("\n\n")

	net, err := render.Net(m.cube, render.NetOptions{})
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		b.WriteString(net)
	}
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.moves))
	if m.autoplay {
		progress += " [AUTO]"
	}
	if m.index == len(m.moves) {
		progress += " [SOLVED]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString("\n")

	if len(m.moves) > 0 {
		parts := make([]string, len(m.moves))
		for i, mv := range m.moves {
			switch {
			case i == m.index-1:
				parts[i] = currentMoveStyle.Render(mv.Notation())
			case i < m.index:
				parts[i] = moveStyle.Render(mv.Notation())
			default:
				parts[i] = statusStyle.Render(mv.Notation())
			}
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("SPACE/n=next  b=back  a=autoplay  r=reset  q=quit"))
	b.WriteString("\n")
	return b.String()
}
