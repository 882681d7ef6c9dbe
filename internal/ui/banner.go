package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is a single labelled line in the banner
type Param struct {
	Key   string
	Value string
}

// Banner is the startup summary of a running server
type Banner struct {
	Title  string
	URL    string
	Params []Param
	Width  int
}

// NewBanner creates a banner sized to the current terminal
func NewBanner(title, url string, params ...Param) *Banner {
	return &Banner{
		Title:  title,
		URL:    url,
		Params: params,
		Width:  GetTerminalWidth(),
	}
}

// SetWidth sets the width for rendering
func (b *Banner) SetWidth(width int) *Banner {
	b.Width = width
	return b
}

// Render returns the styled banner
func (b *Banner) Render() string {
	width := b.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	top := lipgloss.JoinVertical(lipgloss.Left,
		BannerTitleStyle.Render(strings.ToUpper(b.Title)),
		BannerURLStyle.Render(b.URL),
	)

	content := top
	if len(b.Params) > 0 {
		dividerWidth := width - 6 // border and padding
		divider := lipgloss.NewStyle().
			Foreground(PrimaryColor).
			PaddingLeft(2).
			Render(strings.Repeat("─", dividerWidth))

		keyWidth := 0
		for _, p := range b.Params {
			if len(p.Key) > keyWidth {
				keyWidth = len(p.Key)
			}
		}

		lines := make([]string, 0, len(b.Params))
		for _, p := range b.Params {
			key := BannerParamKeyStyle.Render(fmt.Sprintf("%-*s", keyWidth+1, p.Key+":"))
			lines = append(lines, key+" "+BannerParamValueStyle.Render(p.Value))
		}

		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // border characters
		Render(content)
}

// Plain returns the single-line form used when stdout is not a terminal
func (b *Banner) Plain() string {
	return fmt.Sprintf("Server is running on %s", b.URL)
}

// String renders the styled banner on a terminal and the plain line otherwise
func (b *Banner) String() string {
	if IsTerminal() {
		return b.Render()
	}
	return b.Plain()
}
