package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/katalvlaran/algostep/playback"
	"github.com/katalvlaran/algostep/viz"
)

// frameInterval is the animation frame cadence. The player decides on
// each frame whether enough time elapsed to advance a step.
const frameInterval = 50 * time.Millisecond

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	paneStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// frameMsg carries the frame time plus the run the tick was scheduled
// for, so frames outliving a reload are discarded by the player.
type frameMsg struct {
	run uuid.UUID
	t   time.Time
}

// playerModel is the bubbletea model around one playback.Player.
type playerModel struct {
	v      viz.Visualizer
	op     string
	player *playback.Player
}

func newPlayerModel(v viz.Visualizer, op string, player *playback.Player) playerModel {
	return playerModel{v: v, op: op, player: player}
}

// frame schedules the next animation frame for the current run.
func (m playerModel) frame() tea.Cmd {
	run := m.player.Run()

	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{run: run, t: t}
	})
}

// Init implements tea.Model: start playing immediately.
func (m playerModel) Init() tea.Cmd {
	m.player.Play()

	return m.frame()
}

// Update implements tea.Model.
func (m playerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.player.TickRun(msg.run, msg.t)
		if m.player.Playing() {
			return m, m.frame()
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.player.Playing() {
				m.player.Pause()
				return m, nil
			}
			m.player.Play()

			return m, m.frame()
		case "left", "h":
			m.player.Pause()
			m.player.StepBack()
		case "right", "l":
			m.player.Pause()
			m.player.StepForward()
		case "r":
			m.player.Reset()
		case "e":
			m.player.GoToEnd()
		case "+":
			m.player.SetSpeed(m.player.Speed() / 2)
		case "-":
			m.player.SetSpeed(m.player.Speed() * 2)
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m playerModel) View() string {
	cur := m.player.Current()
	if cur == nil {
		return statusStyle.Render("no steps loaded — press q to quit")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.v.Name()) + "\n")
	b.WriteString(paneStyle.Render(m.v.Draw(cur.Snapshot)) + "\n")
	b.WriteString(descStyle.Render(cur.Description) + "\n")

	state := "paused"
	if m.player.Playing() {
		state = "playing"
	}
	meta := cur.Meta
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"step %d/%d · %s · %v/step · cmp %d swp %d rd %d wr %d",
		m.player.Index()+1, m.player.Len(), state, m.player.Speed(),
		meta.Comparisons, meta.Swaps, meta.Reads, meta.Writes)) + "\n")

	if lines := m.v.Pseudocode(m.op); len(lines) > 0 {
		for i, line := range lines {
			prefix := "  "
			if meta.CodeLine == i+1 {
				prefix = "▶ "
			}
			b.WriteString(helpStyle.Render(prefix+line) + "\n")
		}
	}
	b.WriteString(helpStyle.Render("space play/pause · ←/→ step · r reset · e end · +/- speed · q quit"))

	return b.String()
}
