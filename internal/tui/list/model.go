package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one item. The selected flag marks the item under the
// cursor.
type RenderFunc[T any] func(item T, selected bool) string

// VirtualListModel renders only the rows that fit the viewport, so the list
// stays responsive regardless of how many items it holds.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	// itemHeight is the rendered height of one item in terminal rows.
	// Multi-row items (cards) shrink the number of items per page.
	itemHeight int

	selected    int
	visibleFrom int
	visibleTo   int

	height int
	width  int
}

// NewVirtualListModel creates a virtual list. height and width are the
// viewport dimensions in terminal cells; itemHeight is the rows one rendered
// item occupies (minimum 1).
func NewVirtualListModel[T any](items []T, height, width, itemHeight int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	if itemHeight < 1 {
		itemHeight = 1
	}
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		itemHeight: itemHeight,
		height:     height,
		width:      width,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and viewport resizes.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Height, msg.Width)
	}
	return m, nil
}

// handleKeyMsg moves the cursor. Both arrow keys and vim-style j/k work.
//
//nolint:exhaustive // Only navigation keys are relevant here.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.pageSize())
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.pageSize())
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return
		}
		switch msg.Runes[0] {
		case 'j':
			m.SetSelected(m.selected + 1)
		case 'k':
			m.SetSelected(m.selected - 1)
		}
	default:
	}
}

// pageSize is the number of whole items that fit the viewport.
func (m *VirtualListModel[T]) pageSize() int {
	size := m.height / m.itemHeight
	if size < 1 {
		size = 1
	}
	return size
}

// updateVisibleRange keeps the selected item inside the viewport, centering
// it when possible.
func (m *VirtualListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	page := m.pageSize()
	half := page / 2

	from := m.selected - half
	to := from + page

	if from < 0 {
		from = 0
		to = page
	}
	if to > len(m.items) {
		to = len(m.items)
		from = to - page
		if from < 0 {
			from = 0
		}
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// View renders the visible items.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		if i > m.visibleFrom {
			sb.WriteString("\n")
		}
		sb.WriteString(m.renderFunc(m.items[i], i == m.selected))
	}
	return sb.String()
}

// SetItems replaces the item collection wholesale and clamps the cursor.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// SetSize updates the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(height, width int) {
	m.height = height
	m.width = width
	m.updateVisibleRange()
}

// SetSelected moves the cursor, clamping to valid bounds.
func (m *VirtualListModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0:
		m.selected = 0
	case index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// ItemCount returns the total number of items.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the cursor position.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *VirtualListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// SelectedItem returns the item under the cursor, or nil when empty.
func (m *VirtualListModel[T]) SelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
