package canvas

import "strings"

// Field is one labelled value on a card.
type Field struct {
	Label string
	Value string
}

// Card is the structured content of a focus card.
type Card struct {
	Heading    string
	Fields     []Field
	Highlights []string
	// Recommendations are follow-up queries the user can pick from the card.
	Recommendations []string
}

// Render returns the card as plain text.
func (c Card) Render() string {
	var b strings.Builder
	write := func(s string) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s)
	}
	if c.Heading != "" {
		write(c.Heading)
	}
	for _, f := range c.Fields {
		if f.Value == "" {
			continue
		}
		write(f.Label + ": " + f.Value)
	}
	for _, h := range c.Highlights {
		write("• " + h)
	}
	if len(c.Recommendations) > 0 {
		write("Suggested next: " + strings.Join(c.Recommendations, " | "))
	}
	return b.String()
}

// Markdown returns the card as a markdown fragment.
func (c Card) Markdown() string {
	var b strings.Builder
	if c.Heading != "" {
		b.WriteString("### " + c.Heading + "\n\n")
	}
	for _, f := range c.Fields {
		if f.Value == "" {
			continue
		}
		b.WriteString("**" + f.Label + ":** " + f.Value + "  \n")
	}
	if len(c.Highlights) > 0 {
		b.WriteString("\n")
		for _, h := range c.Highlights {
			b.WriteString("- " + h + "\n")
		}
	}
	if len(c.Recommendations) > 0 {
		b.WriteString("\n*Suggested next:*\n")
		for _, r := range c.Recommendations {
			b.WriteString("- " + r + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
