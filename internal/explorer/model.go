package explorer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic"
	"github.com/BrunoMiglioretto/Parser-Latex/foundation/logic/ast"
	"github.com/BrunoMiglioretto/Parser-Latex/internal/history"
)

// Version is set during build
var Version = "1.0.0"

// Config holds explorer configuration
type Config struct {
	// Engine options for interactive parsing
	Engine logic.Options

	// Store records parses persistently; nil disables recording
	Store history.Store

	// MaxEntries limits the session result list
	MaxEntries int
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	cfg := Config{
		Engine:     logic.DefaultOptions(),
		MaxEntries: 200,
	}
	cfg.Engine.CollectStats = true
	return cfg
}

// Model is the main Bubbletea model for the formula explorer
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	parsing    bool
	inputFocus bool
	err        error

	// Components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Session state
	entries   []Entry
	okCount   int
	failCount int

	// Input recall
	inputHistory []string
	historyIndex int
	draft        string

	// Persistent history counters
	storedTotal  int64
	storedFailed int64

	engine     *logic.Engine
	store      history.Store
	maxEntries int
}

// New creates a new explorer model
func New(cfg Config) (Model, error) {
	engine, err := logic.New(cfg.Engine)
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = `(\wedge (true) (1))`
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 76

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 200
	}

	return Model{
		input:        ti,
		spinner:      sp,
		inputFocus:   true,
		historyIndex: -1,
		engine:       engine,
		store:        cfg.Store,
		maxEntries:   maxEntries,
	}, nil
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.spinner.Tick,
		tea.EnterAltScreen,
	}
	if m.store != nil {
		cmds = append(cmds, m.loadStats)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel
		inputHeight := 3  // Input box
		footerHeight := 4 // Status bar + help
		viewportHeight := msg.Height - headerHeight - inputHeight - footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 8
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.parsing {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case parseResultMsg:
		m.parsing = false
		m.entries = append(m.entries, msg.entry)
		if len(m.entries) > m.maxEntries {
			m.entries = m.entries[len(m.entries)-m.maxEntries:]
		}
		if msg.entry.OK {
			m.okCount++
		} else {
			m.failCount++
		}
		m.updateViewportContent()
		m.viewport.GotoBottom()
		if m.store != nil {
			cmds = append(cmds, m.loadStats)
		}

	case statsMsg:
		if msg.err == nil {
			m.storedTotal = msg.total
			m.storedFailed = msg.failed
		}
	}

	if m.inputFocus {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab:
		m.inputFocus = !m.inputFocus
		if m.inputFocus {
			m.input.Focus()
		} else {
			m.input.Blur()
		}
		return m, nil

	case tea.KeyEnter:
		if !m.inputFocus {
			return m, nil
		}
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return m, nil
		}
		m.inputHistory = append(m.inputHistory, line)
		m.historyIndex = -1
		m.draft = ""
		m.input.Reset()
		m.parsing = true
		return m, tea.Batch(m.parseCmd(line), m.spinner.Tick)

	case tea.KeyUp:
		if m.inputFocus {
			m.recallOlder()
			return m, nil
		}
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		if m.inputFocus {
			m.recallNewer()
			return m, nil
		}
		m.viewport.LineDown(1)
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyRunes:
		if !m.inputFocus {
			switch string(msg.Runes) {
			case "q":
				return m, tea.Quit
			case "c":
				m.entries = nil
				m.okCount = 0
				m.failCount = 0
				m.updateViewportContent()
				return m, nil
			case "g":
				m.viewport.GotoTop()
				return m, nil
			case "G":
				m.viewport.GotoBottom()
				return m, nil
			}
		}
	}

	if m.inputFocus {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// recallOlder replaces the input with the previous history entry
func (m *Model) recallOlder() {
	if len(m.inputHistory) == 0 {
		return
	}
	if m.historyIndex == -1 {
		m.draft = m.input.Value()
		m.historyIndex = len(m.inputHistory) - 1
	} else if m.historyIndex > 0 {
		m.historyIndex--
	}
	m.input.SetValue(m.inputHistory[m.historyIndex])
	m.input.CursorEnd()
}

// recallNewer replaces the input with the next history entry
func (m *Model) recallNewer() {
	if m.historyIndex == -1 {
		return
	}
	if m.historyIndex < len(m.inputHistory)-1 {
		m.historyIndex++
		m.input.SetValue(m.inputHistory[m.historyIndex])
	} else {
		m.historyIndex = -1
		m.input.SetValue(m.draft)
	}
	m.input.CursorEnd()
}

// parseCmd parses one formula asynchronously
func (m Model) parseCmd(line string) tea.Cmd {
	engine := m.engine
	store := m.store

	return func() tea.Msg {
		results := engine.ParseAll([]string{line})
		res := results[0]

		entry := Entry{
			Timestamp: time.Now(),
			Input:     res.Input,
			OK:        res.Err == nil,
			Nodes:     res.Nodes,
			Depth:     res.Depth,
		}
		if res.Err != nil {
			entry.Error = res.Err.Error()
			if lerr, ok := res.Err.(*logic.Error); ok {
				entry.Stage = string(lerr.Stage)
			}
		} else {
			entry.Rendered = res.Rendered
			entry.Tree = ast.Tree(res.Formula)
		}

		if store != nil {
			rec := &history.Record{
				Source:   history.SourceTUI,
				Input:    res.Input,
				OK:       res.Err == nil,
				Rendered: res.Rendered,
				Nodes:    res.Nodes,
				Depth:    res.Depth,
				Duration: res.Duration,
			}
			if res.Err != nil {
				rec.Error = res.Err.Error()
			}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			store.Save(ctx, rec)
			cancel()
		}

		return parseResultMsg{entry: entry}
	}
}

// loadStats refreshes the persistent-history counters
func (m Model) loadStats() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stats, err := m.store.Stats(ctx)
	if err != nil {
		return statsMsg{err: err}
	}
	return statsMsg{total: stats.Total, failed: stats.Failed}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading formula explorer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderInput())
	b.WriteString("\n")
	b.WriteString(m.renderResults())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title panel with session counters
func (m Model) renderHeader() string {
	logo := LogoStyle.Render(Logo)

	counts := HelpDescStyle.Render(fmt.Sprintf("session: %d ok / %d failed", m.okCount, m.failCount))

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		logo,
		strings.Repeat(" ", 3),
		counts,
	)

	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderInput renders the formula input box
func (m Model) renderInput() string {
	style := InputStyle
	if m.inputFocus {
		style = FocusedInputStyle
	}
	return style.Width(m.width - 4).Render(m.input.View())
}

// renderResults renders the session result viewport
func (m Model) renderResults() string {
	style := ResultPanelStyle
	if !m.inputFocus {
		style = FocusedResultPanelStyle
	}
	return style.Width(m.width - 2).Render(m.viewport.View())
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	leftPart := HelpDescStyle.Render(fmt.Sprintf("entries: %d", len(m.entries)))

	centerPart := HelpDescStyle.Render("v" + Version)

	var rightPart string
	switch {
	case m.parsing:
		rightPart = m.spinner.View() + " parsing..."
	case m.store != nil:
		rightPart = HelpDescStyle.Render(fmt.Sprintf("history: %d (%d failed)", m.storedTotal, m.storedFailed))
	default:
		rightPart = HelpDescStyle.Render("history off")
	}

	leftLen := lipgloss.Width(leftPart)
	centerLen := lipgloss.Width(centerPart)
	rightLen := lipgloss.Width(rightPart)
	availableSpace := m.width - leftLen - centerLen - rightLen - 4
	if availableSpace < 2 {
		availableSpace = 2
	}
	leftPadding := availableSpace / 2
	rightPadding := availableSpace - leftPadding

	content := leftPart + strings.Repeat(" ", leftPadding) + centerPart + strings.Repeat(" ", rightPadding) + rightPart

	return StatusBarStyle.Width(m.width - 2).Render(content)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "Parse"),
		RenderKeyHint("Tab", "Focus"),
		RenderKeyHint("Up/Down", "Recall/Scroll"),
		RenderKeyHint("c", "Clear"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("q/Ctrl+C", "Quit"),
	}

	return HelpStyle.Render(strings.Join(items, "  "))
}

// updateViewportContent rebuilds the result list
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for _, e := range m.entries {
		timeStr := TimestampStyle.Render(e.Timestamp.Format("15:04:05"))
		verdict := RenderVerdict(e.OK)
		input := InputEchoStyle.Render(e.Input)

		content.WriteString(fmt.Sprintf("%s %s %s\n", timeStr, verdict, input))

		if e.OK {
			content.WriteString(fmt.Sprintf("         = %s   (%d nodes, depth %d)\n", e.Rendered, e.Nodes, e.Depth))
			for _, line := range strings.Split(strings.TrimRight(e.Tree, "\n"), "\n") {
				content.WriteString("         " + TreeStyle.Render(line) + "\n")
			}
		} else {
			msg := e.Error
			if e.Stage != "" {
				msg = fmt.Sprintf("[%s] %s", e.Stage, e.Error)
			}
			content.WriteString("         " + ErrorTextStyle.Render(msg) + "\n")
		}
		content.WriteString("\n")
	}

	m.viewport.SetContent(content.String())
}

// Run starts the formula explorer TUI
func Run(cfg Config) error {
	model, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
