package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rxdesk/rxdesk/internal/tablet"
)

// Card layout. Cards are fixed-size so the virtual list can compute how many
// rows fit one page.
const (
	// cardWidth is the total rendered width of one card, border included.
	cardWidth = 34
	// cardInnerWidth is the usable text width inside the border and padding.
	cardInnerWidth = cardWidth - 4
	// cardHeight is the total rendered height of one card, border included.
	cardHeight = 7
	// truncateSuffix trails every shortened string.
	truncateSuffix = "..."
)

// View renders the current view (Bubble Tea interface). Exactly one of the
// four content views renders per state.
func (m *ListModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return m.loadingState.View()
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateEmpty:
		return m.renderEmptyView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

// renderErrorView renders the failure panel with the retry affordance.
func (m *ListModel) renderErrorView() string {
	var content strings.Builder
	content.WriteString(CriticalStyle.Render(strings.ToUpper(failureTitle)))
	content.WriteString("\n\n")
	content.WriteString(ValueStyle.Render(m.errMsg))

	panel := ErrorBoxStyle.Width(m.panelWidth()).Render(content.String())
	help := SubtleStyle.Render("Press r to retry | q to quit")

	if banner := m.renderNotificationBanner(); banner != "" {
		return lipgloss.JoinVertical(lipgloss.Left, banner, panel, help)
	}
	return lipgloss.JoinVertical(lipgloss.Left, panel, help)
}

// renderNotificationBanner renders the most recent notification as a single
// line above the main content. The banner is transient: the next load cycle
// clears it.
func (m *ListModel) renderNotificationBanner() string {
	n := m.lastNotification
	if n == nil {
		return ""
	}
	style := InfoStyle
	if n.Severity == SeverityDestructive {
		style = CriticalStyle
	}
	return style.Render(fmt.Sprintf("%s: %s", n.Title, n.Message))
}

// renderEmptyView renders the empty-state panel. There is no retry
// affordance here: an empty collection is a successful load.
func (m *ListModel) renderEmptyView() string {
	var content strings.Builder
	content.WriteString(InfoStyle.Render("No tablets found."))
	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render("The inventory returned an empty collection."))

	panel := BoxStyle.Width(m.panelWidth()).Render(content.String())
	help := SubtleStyle.Render("Press q to quit")

	return lipgloss.JoinVertical(lipgloss.Left, panel, help)
}

// renderListView renders the header, the card grid, and the status bar.
func (m *ListModel) renderListView() string {
	header := HeaderStyle.Render(fmt.Sprintf("TABLETS (%d)", len(m.tablets)))
	status := SubtleStyle.Render("up/down navigate | r refresh | q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.grid.View(), status)
}

// renderCardRow renders one grid row of cards side by side.
func (m *ListModel) renderCardRow(row []tablet.Tablet, selected bool) string {
	cards := make([]string, len(row))
	for i, tab := range row {
		cards[i] = RenderCard(tab, selected)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// panelWidth bounds the error and empty panels to the terminal.
func (m *ListModel) panelWidth() int {
	const maxPanelWidth = 60
	width := m.width - 2
	if width > maxPanelWidth {
		width = maxPanelWidth
	}
	if width < 20 {
		width = 20
	}
	return width
}

// RenderCard renders a single tablet card: name, generic name, formatted
// price, optional description, and the truncated identifier. The card has a
// fixed footprint so grids stay aligned.
func RenderCard(tab tablet.Tablet, selected bool) string {
	lines := []string{
		CardNameStyle.Render(truncateText(tab.Name, cardInnerWidth)),
		LabelStyle.Render(truncateText(tab.GenericName, cardInnerWidth)),
		CardPriceStyle.Render(tablet.FormatPrice(tab.Price)),
		CardDescStyle.Render(truncateText(tab.Description, cardInnerWidth)),
		CardIDStyle.Render(tablet.ShortID(tab.ID)),
	}

	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	return style.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}

// RenderTabletGrid renders the full collection as a static card grid for
// non-interactive styled output.
func RenderTabletGrid(tablets []tablet.Tablet, width int) string {
	if len(tablets) == 0 {
		return InfoStyle.Render("No tablets found.")
	}

	cols := width / cardWidth
	if cols < 1 {
		cols = 1
	}

	var rows []string
	for _, row := range chunkTablets(tablets, cols) {
		cards := make([]string, len(row))
		for i, tab := range row {
			cards[i] = RenderCard(tab, false)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	header := HeaderStyle.Render(fmt.Sprintf("TABLETS (%d)", len(tablets)))
	return lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(rows, "\n"))
}

// truncateText shortens s to maxLen runes, ellipsis included. Rune-aware so
// multi-byte names survive.
func truncateText(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= len(truncateSuffix) {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-len(truncateSuffix)]) + truncateSuffix
}
