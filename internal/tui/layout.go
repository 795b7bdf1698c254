package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/templeops/internal/canvas"
	"github.com/csheth/templeops/internal/simulation"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	chatWidth      int
	canvasWidth    int
	paneHeight     int
	composerHeight int
}

func newPageLayout() pageLayout {
	return pageLayout{
		chatWidth:      32,
		canvasWidth:    46,
		paneHeight:     16,
		composerHeight: 1,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.chatWidth = innerWidth * 2 / 5
	l.canvasWidth = innerWidth - l.chatWidth - paneGap
	l.composerHeight = 1
	const chrome = 14
	usable := height - chrome - l.composerHeight
	if usable < 6 {
		usable = 6
	}
	l.paneHeight = usable
}

// canvasHeights splits the right column between the canvas and the document
// panel when one is open.
func (l pageLayout) canvasHeights(withPanel bool) (int, int) {
	if !withPanel {
		return l.paneHeight, 0
	}
	panel := l.paneHeight / 2
	if panel < 3 {
		panel = 3
	}
	canvasHeight := l.paneHeight - panel
	if canvasHeight < 3 {
		canvasHeight = 3
	}
	return canvasHeight, panel
}

type contentBuilder struct {
	builder strings.Builder
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (m *model) buildChatContent() string {
	cb := &contentBuilder{}
	if len(m.state.Messages) == 0 {
		cb.WriteString(helperStyle.Render("Ask about a VIP visit, a homa, flower stock or say \"add call the florist to my plan\"."))
		cb.WriteRune('\n')
		return cb.String()
	}
	wrap := wrapWidth(m.layout.chatWidth, 4)
	for idx, msg := range m.state.Messages {
		if idx > 0 {
			cb.WriteRune('\n')
		}
		if msg.Role == simulation.RoleSystem {
			cb.WriteString(helperStyle.Render(wordwrap.String(msg.Text, wrap)))
			cb.WriteRune('\n')
			continue
		}
		cb.WriteString(roleStyle(msg.Role).Render(transcriptLabel(msg.Role)))
		cb.WriteRune('\n')
		body := msg.Text
		if msg.IsTyping {
			body += typingCursor
		}
		cb.WriteString(indentMultiline(wordwrap.String(body, wrap), "  "))
		cb.WriteRune('\n')
	}
	return cb.String()
}

func (m *model) buildCanvasContent() string {
	cb := &contentBuilder{}
	visible := 0
	for _, sec := range m.state.Sections {
		if !sec.IsVisible {
			continue
		}
		if visible > 0 {
			cb.WriteRune('\n')
		}
		visible++
		m.writeSection(cb, sec)
	}
	if visible == 0 {
		cb.WriteString(sectionHeaderStyle.Render("Canvas"))
		cb.WriteRune('\n')
		cb.WriteString(helperStyle.Render("Briefings, checklists and your planner appear here."))
		cb.WriteRune('\n')
	}
	if len(m.chips) > 0 {
		cb.WriteRune('\n')
		cb.WriteString(m.chipsView())
		cb.WriteRune('\n')
	}
	return cb.String()
}

func (m *model) writeSection(cb *contentBuilder, sec canvas.Section) {
	title := sec.Title
	if sec.IsPlanner() {
		title = titleStyle.Render(title)
	} else {
		title = sectionHeaderStyle.Render(title)
	}
	cb.WriteString(title)
	cb.WriteRune('\n')
	if sec.SubTitle != "" {
		cb.WriteString(subtitleStyle.Render(sec.SubTitle))
		cb.WriteRune('\n')
	}
	if body, ok := sec.Body.(canvas.CardBody); ok && sec.Revealed() {
		if rendered, err := m.renderCard(body.Card); err == nil {
			cb.WriteString(strings.Trim(rendered, "\n"))
			cb.WriteRune('\n')
			return
		}
	}
	text := wordwrap.String(sec.VisibleContent, wrapWidth(m.layout.canvasWidth, 2))
	if !sec.Revealed() && m.stage == stageRevealing {
		text += typingCursor
	}
	cb.WriteString(text)
	cb.WriteRune('\n')
}

// renderCard formats a focus card with glamour. The renderer is rebuilt only
// when the canvas width changes.
func (m *model) renderCard(card canvas.Card) (string, error) {
	width := wrapWidth(m.layout.canvasWidth, 2)
	if m.cardRenderer == nil || m.rendererWidth != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		m.cardRenderer = renderer
		m.rendererWidth = width
	}
	return m.cardRenderer.Render(card.Markdown())
}

func (m *model) chipsView() string {
	parts := []string{helperStyle.Render("Suggested next (Tab to cycle, Ctrl+R to ask):")}
	for idx, chip := range m.chips {
		if idx == m.chipIndex {
			parts = append(parts, currentLineStyle.Render("▸ "+chip))
			continue
		}
		parts = append(parts, chipStyle.Render("  "+chip))
	}
	return strings.Join(parts, "\n")
}

func (m *model) buildUploadContent() string {
	if m.upload == nil {
		return ""
	}
	cb := &contentBuilder{}
	cb.WriteString(sectionHeaderStyle.Render("Document Summary"))
	cb.WriteRune('\n')
	cb.WriteString(helperStyle.Render(trimmedTitle(m.upload.Source)))
	cb.WriteRune('\n')
	switch {
	case m.upload.Pending:
		cb.WriteString(helperStyle.Render(m.spinner.View() + " Reading document…"))
	case m.upload.Err != "":
		cb.WriteString(errorStyle.Render(m.upload.Err))
	default:
		cb.WriteString(wordwrap.String(m.upload.Summary.Render(), wrapWidth(m.layout.canvasWidth, 2)))
	}
	cb.WriteRune('\n')
	return cb.String()
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func wrapWidth(width, padding int) int {
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	if width-padding < 20 {
		return 20
	}
	return width - padding
}

func transcriptLabel(role simulation.Role) string {
	switch role {
	case simulation.RoleUser:
		return "You"
	case simulation.RoleAssistant:
		return "TempleOps"
	case simulation.RoleSystem:
		return "System"
	default:
		return string(role)
	}
}

var ansiEscapeCodes = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(text string) string {
	return ansiEscapeCodes.ReplaceAllString(text, "")
}
