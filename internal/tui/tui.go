// Package tui provides a Bubble Tea terminal user interface for mbzcue.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mbzcue/internal/config"
	"mbzcue/internal/generate"
	mbzhttp "mbzcue/internal/http"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateGenerating
	StateComplete
	StateError
)

// focusable input fields on the entry screen.
const (
	fieldURL = iota
	fieldWAV
	fieldCount
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	inputs   []textinput.Model
	focus    int
	spinner  spinner.Model
	settings *config.Settings

	logs    []generate.ProgressEvent
	written []string
	err     error

	// Options
	coverArt bool
	verbose  bool

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	url := textinput.New()
	url.Placeholder = "https://musicbrainz.org/release/<mbid>"
	url.Focus()
	url.CharLimit = 500
	url.Width = 60

	wav := textinput.New()
	wav.Placeholder = "album.wav"
	wav.CharLimit = 255
	wav.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:    StateInput,
		inputs:   []textinput.Model{url, wav},
		spinner:  sp,
		settings: config.DefaultSettings(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg is sent for each pipeline progress event.
	ProgressMsg struct {
		Event generate.ProgressEvent
	}

	// GenerateDoneMsg is sent when the pipeline finishes.
	GenerateDoneMsg struct {
		Written []string
		Err     error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateGenerating {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "tab", "shift+tab":
			if m.state == StateInput {
				m.focus = (m.focus + 1) % fieldCount
				for i := range m.inputs {
					if i == m.focus {
						m.inputs[i].Focus()
					} else {
						m.inputs[i].Blur()
					}
				}
			}

		case "enter":
			if m.state == StateInput && m.urlValue() != "" && m.wavValue() != "" {
				m.state = StateGenerating
				m.logs = nil
				return m, tea.Batch(m.startGeneration(), m.spinner.Tick)
			}

		case "ctrl+a":
			if m.state == StateInput {
				m.coverArt = !m.coverArt
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for another release
				m.state = StateInput
				m.logs = nil
				m.written = nil
				m.err = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.inputs[fieldURL].SetValue("")
				m.focus = fieldURL
				m.inputs[fieldURL].Focus()
				m.inputs[fieldWAV].Blur()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if msg.Event.Level == generate.LevelVerbose && !m.verbose {
			return m, nil
		}
		m.logs = append(m.logs, msg.Event)
		// Keep only the last 10 logs
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case GenerateDoneMsg:
		m.written = msg.Written
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}
	}

	// Update text inputs
	if m.state == StateInput {
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) urlValue() string {
	return strings.TrimSpace(m.inputs[fieldURL].Value())
}

func (m Model) wavValue() string {
	return strings.TrimSpace(m.inputs[fieldWAV].Value())
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("mbzcue"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Generate cue sheets from MusicBrainz releases"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateGenerating:
		b.WriteString(m.viewGenerating())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Release URL:"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldURL].View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("Audio filename (written into the FILE line):"))
	b.WriteString("\n")
	b.WriteString(m.inputs[fieldWAV].View())
	b.WriteString("\n\n")

	coverCheck := "[ ]"
	if m.coverArt {
		coverCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Save cover art (ctrl+a)\n", coverCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose per-track trace (ctrl+v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewGenerating() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching release and writing cue sheets..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	lines := []string{fmt.Sprintf("Done! %d file(s) written", len(m.written))}
	for _, path := range m.written {
		lines = append(lines, "  "+path)
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case generate.LevelError:
			style = errorStyle
			prefix = "✗"
		case generate.LevelWarning:
			style = warningStyle
			prefix = "!"
		case generate.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case generate.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: generate • tab: switch field • ctrl+a: cover art • ctrl+v: verbose • esc: quit"
	case StateGenerating:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: another release • q: quit"
	}
	return ""
}

// startGeneration runs the pipeline and reports back with a
// GenerateDoneMsg. Progress events are streamed to the program as they
// happen.
func (m *Model) startGeneration() tea.Cmd {
	url := m.urlValue()
	wav := m.wavValue()

	settings := config.DefaultSettings()
	settings.SaveCoverArt = m.coverArt

	ctx := m.ctx

	return func() tea.Msg {
		client := mbzhttp.NewClient(settings.UserAgent, time.Duration(settings.TimeoutSeconds)*time.Second)

		gen := generate.NewGenerator(settings, client, func(event generate.ProgressEvent) {
			program.Send(ProgressMsg{Event: event})
		})

		written, err := gen.Run(ctx, url, settings.OutputFile, wav)
		return GenerateDoneMsg{Written: written, Err: err}
	}
}

// program is the running Bubble Tea program, set by Run so pipeline
// progress events can be streamed into the update loop.
var program *tea.Program

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	program = p
	_, err := p.Run()
	return err
}
