package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rxdesk/rxdesk/internal/tablet"
	listview "github.com/rxdesk/rxdesk/internal/tui/list"
)

// Fetcher loads the full tablet collection. *api.Client satisfies it.
type Fetcher interface {
	ListTablets(ctx context.Context) ([]tablet.Tablet, error)
}

// tabletsLoadedMsg is sent when a load attempt completes. The token ties the
// message to the load cycle that issued it; responses from superseded cycles
// are discarded.
type tabletsLoadedMsg struct {
	token   uint64
	tablets []tablet.Tablet
	err     error
}

// genericLoadFailure is shown when the underlying error carries no message.
const genericLoadFailure = "something went wrong while loading tablets"

// failureTitle heads every failure notification.
const failureTitle = "Failed to load tablets"

// Default dimensions used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// chrome rows around the card grid (header, blank line, status bar).
const gridChromeHeight = 4

// ListModel is the Bubble Tea model for the tablet list view. Each load
// cycle chooses a data source once: a provided non-empty collection is
// copied directly, anything else goes to the network. On completion the view
// is exactly one of loading, error, empty, or the populated card grid.
type ListModel struct {
	ctx      context.Context
	fetcher  Fetcher
	notifier Notifier

	// provided, when non-empty, is the caller-supplied collection used
	// instead of the network.
	provided []tablet.Tablet

	// source is the strategy of the current load cycle.
	source DataSource

	// generation identifies the current load cycle. A response carrying an
	// older token lost the race to a newer reload and is dropped.
	generation uint64

	tablets []tablet.Tablet
	state   ViewState
	loading bool
	errMsg  string

	lastNotification *Notification

	grid         *listview.VirtualListModel[[]tablet.Tablet]
	loadingState *LoadingState

	width  int
	height int
}

// Options configures a ListModel.
type Options struct {
	// Provided, when non-empty, is used directly as the data source and no
	// network call happens.
	Provided []tablet.Tablet
	// Fetcher loads the collection when Provided is empty or absent.
	Fetcher Fetcher
	// Notifier receives one notification per failed load attempt. Optional;
	// nil drops notifications.
	Notifier Notifier
}

// NewListModel creates the tablet list view.
func NewListModel(ctx context.Context, opts Options) *ListModel {
	m := &ListModel{
		ctx:          ctx,
		fetcher:      opts.Fetcher,
		notifier:     opts.Notifier,
		provided:     opts.Provided,
		state:        ViewStateLoading,
		width:        defaultWidth,
		height:       defaultHeight,
		loadingState: NewLoadingState("Loading tablets..."),
	}
	m.grid = listview.NewVirtualListModel(nil, m.gridHeight(), m.width, cardHeight, m.renderCardRow)
	return m
}

// Init starts the spinner and the first load cycle.
func (m *ListModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), m.startLoad())
}

// startLoad begins a new load cycle: it bumps the generation, clears any
// prior error, chooses the data source, and either copies the provided
// collection or issues exactly one fetch.
func (m *ListModel) startLoad() tea.Cmd {
	m.generation++
	m.errMsg = ""
	m.lastNotification = nil
	m.source = m.chooseSource()

	if m.source == SourceProvided {
		m.loading = false
		m.setTablets(append([]tablet.Tablet(nil), m.provided...))
		return nil
	}

	m.state = ViewStateLoading
	m.loading = true

	// Capture everything the goroutine needs; the model must not be touched
	// concurrently.
	token := m.generation
	ctx := m.ctx
	fetcher := m.fetcher

	return func() tea.Msg {
		tablets, err := fetcher.ListTablets(ctx)
		return tabletsLoadedMsg{token: token, tablets: tablets, err: err}
	}
}

// chooseSource picks the data source for one load cycle. Provided-empty and
// absent are the same thing: both fetch.
func (m *ListModel) chooseSource() DataSource {
	if len(m.provided) > 0 {
		return SourceProvided
	}
	return SourceFetch
}

// Update handles messages (Bubble Tea interface).
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rebuildGrid()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		return m, m.loadingState.Update(msg)

	case tabletsLoadedMsg:
		return m.handleLoaded(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleLoaded finishes a load attempt. The loading flag clears on every
// path, success and failure alike.
func (m *ListModel) handleLoaded(msg tabletsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.token != m.generation {
		// A newer load cycle superseded this response.
		return m, nil
	}

	m.loading = false

	if msg.err != nil {
		m.errMsg = errorMessage(msg.err)
		m.state = ViewStateError
		m.notify(Notification{
			Severity: SeverityDestructive,
			Title:    failureTitle,
			Message:  m.errMsg,
		})
		return m, nil
	}

	m.setTablets(msg.tablets)
	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only quit, reload, and navigation keys are relevant.
func (m *ListModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return m, nil
		}
		switch msg.Runes[0] {
		case 'q':
			m.state = ViewStateQuitting
			return m, tea.Quit
		case 'r':
			cmd := m.startLoad()
			if m.loading {
				// Restart the spinner alongside the fetch.
				return m, tea.Batch(m.loadingState.Init(), cmd)
			}
			return m, cmd
		}
	default:
	}

	if m.state == ViewStateList {
		_, cmd := m.grid.Update(msg)
		return m, cmd
	}
	return m, nil
}

// setTablets replaces the displayed collection wholesale and moves to the
// matching view.
func (m *ListModel) setTablets(tablets []tablet.Tablet) {
	m.tablets = tablets
	if len(tablets) == 0 {
		m.state = ViewStateEmpty
		m.grid.SetItems(nil)
		return
	}
	m.state = ViewStateList
	m.rebuildGrid()
}

// rebuildGrid re-chunks the collection into card rows for the current width.
func (m *ListModel) rebuildGrid() {
	m.grid.SetSize(m.gridHeight(), m.width)
	m.grid.SetItems(chunkTablets(m.tablets, m.columns()))
}

// columns is how many cards fit one row at the current width.
func (m *ListModel) columns() int {
	cols := m.width / cardWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

// gridHeight is the viewport height left for the card grid.
func (m *ListModel) gridHeight() int {
	h := m.height - gridChromeHeight
	if h < cardHeight {
		h = cardHeight
	}
	return h
}

// chunkTablets splits the collection into rows of up to cols cards,
// preserving order.
func chunkTablets(tablets []tablet.Tablet, cols int) [][]tablet.Tablet {
	if len(tablets) == 0 {
		return nil
	}
	rows := make([][]tablet.Tablet, 0, (len(tablets)+cols-1)/cols)
	for start := 0; start < len(tablets); start += cols {
		end := start + cols
		if end > len(tablets) {
			end = len(tablets)
		}
		rows = append(rows, tablets[start:end])
	}
	return rows
}

// notify forwards a notification and remembers it for the view.
func (m *ListModel) notify(n Notification) {
	m.lastNotification = &n
	if m.notifier != nil {
		m.notifier.Notify(n)
	}
}

// errorMessage normalizes a load failure into one display string, preferring
// the underlying error's message.
func errorMessage(err error) string {
	if err == nil || strings.TrimSpace(err.Error()) == "" {
		return genericLoadFailure
	}
	return err.Error()
}

// State returns the current view state.
func (m *ListModel) State() ViewState {
	return m.state
}

// Tablets returns the displayed collection.
func (m *ListModel) Tablets() []tablet.Tablet {
	return m.tablets
}

// Source returns the data source of the current load cycle.
func (m *ListModel) Source() DataSource {
	return m.source
}
