package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/templeops/internal/simulation"
)

func (m *model) View() string {
	m.refreshViewportsIfDirty()
	body := m.renderStackedDisplay()
	return joinNonEmpty([]string{body, m.composerPanel(), m.footerView()})
}

func (m *model) renderStackedDisplay() string {
	parts := []string{m.heroView(), m.panesView()}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		message := m.infoMessage
		if m.stage == stageThinking {
			message = fmt.Sprintf("%s %s", m.spinner.View(), message)
		}
		parts = append(parts, helperStyle.Render(message))
	}
	if m.helpVisible {
		parts = append(parts, m.keyLegendView(), m.helpView())
	}
	return joinNonEmpty(parts)
}

func (m *model) panesView() string {
	chat := paneStyle.Render(joinLines(
		sectionHeaderStyle.Render("Conversation"),
		m.chatViewport.View(),
	))
	right := []string{joinLines(sectionHeaderStyle.Render("Canvas"), m.canvasViewport.View())}
	if m.upload != nil {
		_, panelHeight := m.layout.canvasHeights(true)
		panel := lipgloss.NewStyle().
			Width(m.layout.canvasWidth).
			MaxHeight(panelHeight).
			Render(strings.TrimRight(m.buildUploadContent(), "\n"))
		right = append(right, panel)
	}
	board := paneStyle.Render(strings.Join(right, "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, chat, strings.Repeat(" ", paneGap), board)
}

func (m *model) composerPanel() string {
	return joinNonEmpty([]string{
		sectionHeaderStyle.Render("Composer"),
		m.composer.View(),
		helperStyle.Render(m.composerHelpText()),
	})
}

func (m *model) composerHelpText() string {
	return "Enter: send • Tab: next suggestion • Ctrl+R: ask suggestion • /upload /clear /reset • Esc: clear"
}

func (m *model) footerView() string {
	return m.sessionMeterView()
}

func (m *model) heroView() string {
	logo := renderLogo()
	if m.layout.windowWidth > 0 && m.layout.windowWidth < lipgloss.Width(logo) {
		logo = heroTitleStyle.Render("TempleOps")
	}
	if m.visit == nil {
		return lipgloss.JoinVertical(lipgloss.Left, logo, taglineStyle.Render(heroTagline))
	}
	lines := []string{heroTitleStyle.Render(m.visit.Visitor)}
	if m.visit.Title != "" {
		lines = append(lines, m.visit.Title)
	}
	meta := []string{
		"Protocol " + string(m.visit.ProtocolLevel),
		m.visit.Date.Format("Mon 2 Jan"),
		m.visit.Time,
	}
	if m.visit.Location != "" {
		meta = append(meta, m.visit.Location)
	}
	lines = append(lines, strings.Join(meta, " • "))
	visit := heroBoxStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, logo, visit)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func joinLines(parts ...string) string {
	return strings.Join(parts, "\n")
}

func (m *model) statusLabel() string {
	switch m.stage {
	case stageThinking:
		return "THINKING"
	case stageRevealing:
		return "PLANNING"
	default:
		if m.state.Status == simulation.StatusComplete {
			return "READY"
		}
		return "IDLE"
	}
}

func (m *model) sessionMeterView() string {
	module := m.module
	if module == "" {
		module = "Dashboard"
	}
	stats := []string{
		fmt.Sprintf("Status %s", m.statusLabel()),
		fmt.Sprintf("Module %s", module),
	}
	if planner, ok := m.state.Planner(); ok {
		stats = append(stats, fmt.Sprintf("Planner %d", len(planner.Actions())))
	}
	focus := 0
	for _, sec := range m.state.Sections {
		if sec.IsFocus() {
			focus++
		}
	}
	if focus > 0 {
		stats = append(stats, fmt.Sprintf("Cards %d", focus))
	}
	if jobBadges := m.jobStatusBadges(); len(jobBadges) > 0 {
		stats = append(stats, jobBadges...)
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) jobStatusBadges() []string {
	counts := map[jobKind]int{}
	for _, job := range m.activeJobs {
		if job.Status == jobStatusRunning {
			counts[job.Kind]++
		}
	}
	if counts[jobKindUpload] == 0 {
		return nil
	}
	return []string{fmt.Sprintf("%s %s", m.spinner.View(), "Reading document")}
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"Enter", "Send"},
		{"Tab", "Next suggestion"},
		{"Ctrl+R", "Ask suggestion"},
		{"↑/↓", "Scroll chat"},
		{"PgUp/PgDn", "Scroll canvas"},
		{"?", "Toggle cheatsheet"},
		{"Esc", "Clear or quit"},
		{"Ctrl+C", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Navigation Cheatsheet")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := min(i+columns, len(hints))
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + hint.Description + "  ")
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func (m *model) helpView() string {
	lines := []string{sectionHeaderStyle.Render("Commands")}
	for _, cmd := range slashCommands {
		lines = append(lines, helperStyle.Render(fmt.Sprintf("• %s  %s", cmd.usage, cmd.desc)))
	}
	lines = append(lines,
		helperStyle.Render("• try \"PM is visiting on 15 March at 10 AM\", \"Plan a Chandi homa for Sunday\" or \"go to assets\"."),
	)
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width += 1
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			if y+1 < height && x+1 < width {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}

	for y, runes := range lineRunes {
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			grid[y][x] = cell{r: r, style: logoFaceStyle}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
