package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/parser"
	"github.com/csheth/templeops/internal/simulation"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Session *simulation.Session
	Logger  *zap.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Session == nil {
		config.Session = simulation.NewSession(simulation.DefaultPacing(), simulation.WithLogger(config.Logger))
	}

	composer := textinput.New()
	composer.Placeholder = composerChatPlaceholder
	composer.CharLimit = 280
	composer.Width = 70
	composer.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	layout := newPageLayout()
	chat := viewport.New(layout.chatWidth, layout.paneHeight)
	chat.MouseWheelEnabled = true
	board := viewport.New(layout.canvasWidth, layout.paneHeight)
	board.MouseWheelEnabled = true

	return &model{
		config:         config,
		session:        config.Session,
		log:            config.Logger.Named("tui"),
		jobs:           newJobBus(config.Logger),
		layout:         layout,
		stage:          stageIdle,
		composer:       composer,
		spinner:        spin,
		chatViewport:   chat,
		canvasViewport: board,
		chatDirty:      true,
		canvasDirty:    true,
		activeJobs:     map[string]jobSnapshot{},
		infoMessage:    "Type a request and press Enter. /help lists commands.",
	}
}

type model struct {
	config  Config
	session *simulation.Session
	log     *zap.Logger
	jobs    *jobBus
	layout  pageLayout
	stage   stage

	composer       textinput.Model
	spinner        spinner.Model
	chatViewport   viewport.Model
	canvasViewport viewport.Model
	cardRenderer   *glamour.TermRenderer
	rendererWidth  int

	turn        uint64
	stepDone    bool
	typeDone    bool
	state       simulation.State
	chatDirty   bool
	canvasDirty bool

	chips     []string
	chipIndex int
	module    string
	visit     *parser.VIPVisit
	upload    *uploadPanel

	activeJobs   map[string]jobSnapshot
	infoMessage  string
	errorMessage string
	helpVisible  bool
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case thinkMsg:
		return m, m.handleThink(msg)
	case stepMsg:
		return m, m.handleStep(msg)
	case typeMsg:
		return m, m.handleType(msg)
	case jobSignalMsg:
		m.activeJobs[msg.Snapshot.ID] = msg.Snapshot
		return m, nil
	case jobResultEnvelope:
		delete(m.activeJobs, msg.Snapshot.ID)
		if payload, ok := msg.Payload.(uploadResultMsg); ok {
			m.handleUploadResult(payload)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		var chatCmd, canvasCmd tea.Cmd
		m.chatViewport, chatCmd = m.chatViewport.Update(msg)
		m.canvasViewport, canvasCmd = m.canvasViewport.Update(msg)
		return m, tea.Batch(chatCmd, canvasCmd)
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.composer.Width = m.layout.chatWidth + m.layout.canvasWidth - 4
		m.applyLayout()
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		if strings.TrimSpace(m.composer.Value()) != "" {
			m.composer.SetValue("")
			return m, nil
		}
		if m.helpVisible {
			m.helpVisible = false
			return m, nil
		}
		return m, tea.Quit
	case tea.KeyEnter:
		value := strings.TrimSpace(m.composer.Value())
		m.composer.SetValue("")
		if value == "" {
			return m, nil
		}
		if name, arg, ok := parseSlashCommand(value); ok {
			return m, m.runSlashCommand(name, arg)
		}
		return m, m.submit(value, simulation.Options{})
	case tea.KeyTab:
		m.cycleChip(1)
		return m, nil
	case tea.KeyShiftTab:
		m.cycleChip(-1)
		return m, nil
	case tea.KeyCtrlR:
		return m, m.submitChip()
	case tea.KeyUp, tea.KeyDown:
		var cmd tea.Cmd
		m.chatViewport, cmd = m.chatViewport.Update(key)
		return m, cmd
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.canvasViewport, cmd = m.canvasViewport.Update(key)
		return m, cmd
	}
	if key.String() == "?" && m.composer.Value() == "" {
		m.helpVisible = !m.helpVisible
		return m, nil
	}
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(key)
	return m, cmd
}

func (m *model) submit(query string, opts simulation.Options) tea.Cmd {
	opts.OnModuleDetected = m.onModuleDetected
	opts.OnVIPVisitParsed = m.onVIPVisitParsed
	turn, err := m.session.Submit(query, opts)
	if err != nil {
		m.errorMessage = err.Error()
		return nil
	}
	m.turn = turn.ID
	m.stage = stageThinking
	m.stepDone = false
	m.typeDone = false
	m.errorMessage = ""
	m.infoMessage = "Thinking…"
	m.syncState()
	return tea.Batch(m.spinner.Tick, thinkCmd(turn.ID, m.session.Pacing().Think))
}

func (m *model) handleThink(msg thinkMsg) tea.Cmd {
	if msg.turn != m.turn {
		return nil
	}
	if !m.session.Dispatch(msg.turn) {
		return nil
	}
	m.stage = stageRevealing
	m.infoMessage = ""
	m.syncState()
	return tea.Batch(stepCmd(msg.turn, 0), typeCmd(msg.turn, 0))
}

func (m *model) handleStep(msg stepMsg) tea.Cmd {
	if msg.turn != m.turn {
		return nil
	}
	tick := m.session.Step(msg.turn)
	m.syncState()
	if tick.Done {
		m.stepDone = true
		m.finishIfDone()
		return nil
	}
	return stepCmd(msg.turn, tick.Delay)
}

func (m *model) handleType(msg typeMsg) tea.Cmd {
	if msg.turn != m.turn {
		return nil
	}
	tick := m.session.TypeStep(msg.turn)
	m.syncState()
	if tick.Done {
		m.typeDone = true
		m.finishIfDone()
		return nil
	}
	return typeCmd(msg.turn, tick.Delay)
}

func (m *model) finishIfDone() {
	if m.stepDone && m.typeDone && m.stage == stageRevealing {
		m.stage = stageIdle
		m.log.Debug("turn rendered", zap.Uint64("turn", m.turn), zap.Int("sections", len(m.state.Sections)))
	}
}

// Callbacks run inside Update (Dispatch is called from handleThink), so they
// may touch the model directly.
func (m *model) onModuleDetected(name string) {
	m.module = name
	m.infoMessage = fmt.Sprintf("Switched to the %s module.", name)
}

func (m *model) onVIPVisitParsed(visit parser.VIPVisit) {
	v := visit
	m.visit = &v
}

func (m *model) runSlashCommand(name, arg string) tea.Cmd {
	cmd, ok := lookupSlashCommand(name)
	if !ok {
		m.errorMessage = fmt.Sprintf("Unknown command /%s. Try /help.", name)
		return nil
	}
	m.errorMessage = ""
	switch cmd.name {
	case "upload":
		if arg == "" {
			m.errorMessage = "Usage: " + cmd.usage
			return nil
		}
		m.upload = &uploadPanel{Source: arg, Pending: true}
		m.infoMessage = "Reading " + trimmedTitle(arg) + "…"
		m.applyLayout()
		return tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindUpload, uploadJob(arg)))
	case "clear":
		m.session.ClearPlanner()
		m.infoMessage = "Planner cleared."
		m.syncState()
	case "reset":
		m.session.Reset()
		m.turn = 0
		m.stage = stageIdle
		m.module = ""
		m.visit = nil
		m.upload = nil
		m.infoMessage = "Session reset."
		m.syncState()
		m.applyLayout()
	case "help":
		m.helpVisible = !m.helpVisible
	}
	return nil
}

func (m *model) handleUploadResult(msg uploadResultMsg) {
	if m.upload == nil || m.upload.Source != msg.source {
		return
	}
	m.upload.Pending = false
	if msg.err != nil {
		m.upload.Err = msg.err.Error()
		m.errorMessage = "Upload failed: " + msg.err.Error()
		m.infoMessage = ""
		return
	}
	m.upload.Summary = msg.summary
	m.upload.Err = ""
	m.infoMessage = fmt.Sprintf("Summarized %s (%d words).", trimmedTitle(msg.source), msg.summary.Words)
}

func (m *model) cycleChip(delta int) {
	if len(m.chips) == 0 {
		return
	}
	m.chipIndex = (m.chipIndex + delta + len(m.chips)) % len(m.chips)
	m.canvasDirty = true
}

func (m *model) submitChip() tea.Cmd {
	if len(m.chips) == 0 {
		m.infoMessage = "No suggestions on the canvas yet."
		return nil
	}
	chip := m.chips[m.chipIndex]
	return m.submit(simulation.RecPrefix+chip, simulation.Options{DisplayQuery: chip})
}

func (m *model) busy() bool {
	if m.stage != stageIdle {
		return true
	}
	return m.upload != nil && m.upload.Pending
}

// syncState copies the session snapshot and recomputes the suggestion chips
// from the visible focus cards.
func (m *model) syncState() {
	m.state = m.session.Snapshot()
	if m.state.Module != "" {
		m.module = m.state.Module
	}
	var chips []string
	for _, sec := range m.state.Sections {
		body, ok := sec.Body.(canvas.CardBody)
		if !ok || !sec.IsVisible {
			continue
		}
		chips = append(chips, body.Card.Recommendations...)
	}
	if !slices.Equal(chips, m.chips) {
		m.chips = chips
		m.chipIndex = 0
	}
	m.chatDirty = true
	m.canvasDirty = true
}

func (m *model) applyLayout() {
	canvasHeight, _ := m.layout.canvasHeights(m.upload != nil)
	m.chatViewport.Width = m.layout.chatWidth
	m.chatViewport.Height = m.layout.paneHeight
	m.canvasViewport.Width = m.layout.canvasWidth
	m.canvasViewport.Height = canvasHeight
	m.chatDirty = true
	m.canvasDirty = true
}

func (m *model) refreshViewportsIfDirty() {
	if m.chatDirty {
		m.chatDirty = false
		m.chatViewport.SetContent(m.buildChatContent())
		m.chatViewport.GotoBottom()
	}
	if m.canvasDirty {
		m.canvasDirty = false
		offset := m.canvasViewport.YOffset
		m.canvasViewport.SetContent(m.buildCanvasContent())
		m.canvasViewport.SetYOffset(offset)
	}
}

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Underline(true)
	subtitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("147"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	userStyle          = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110"))
	assistantStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffb347"))
	chipStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#a3be8c")).Italic(true)

	heroAccentColor        = lipgloss.Color("#ff8c00")
	heroEmberColor         = lipgloss.Color("#2b1400")
	heroTextColor          = lipgloss.Color("#fff4d0")
	heroSecondaryTextColor = lipgloss.Color("#ffb347")

	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(heroAccentColor)
	heroBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(heroAccentColor).Foreground(heroTextColor).Background(heroEmberColor).Padding(0, 1)
	taglineStyle       = lipgloss.NewStyle().Foreground(heroSecondaryTextColor).Italic(true)
	paneStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e"))
	statusBarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle           = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	helpBoxStyle       = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(1, 2)
	currentLineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#8ecae6"))
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(heroEmberColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#110600"))
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		"████████╗ ███████╗ ███╗   ███╗ ██████╗  ██╗      ███████╗  ██████╗  ██████╗  ███████╗",
		"╚══██╔══╝ ██╔════╝ ████╗ ████║ ██╔══██╗ ██║      ██╔════╝ ██╔═══██╗ ██╔══██╗ ██╔════╝",
		"   ██║    █████╗   ██╔████╔██║ ██████╔╝ ██║      █████╗   ██║   ██║ ██████╔╝ ███████╗",
		"   ██║    ██╔══╝   ██║╚██╔╝██║ ██╔═══╝  ██║      ██╔══╝   ██║   ██║ ██╔═══╝  ╚════██║",
		"   ██║    ███████╗ ██║ ╚═╝ ██║ ██║      ███████╗ ███████╗ ╚██████╔╝ ██║      ███████║",
		"   ╚═╝    ╚══════╝ ╚═╝     ╚═╝ ╚═╝      ╚══════╝ ╚══════╝  ╚═════╝  ╚═╝      ╚══════╝",
	}
)

func roleStyle(role simulation.Role) lipgloss.Style {
	switch role {
	case simulation.RoleUser:
		return userStyle
	case simulation.RoleAssistant:
		return assistantStyle
	default:
		return helperStyle
	}
}
