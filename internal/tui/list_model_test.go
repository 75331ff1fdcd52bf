package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxdesk/rxdesk/internal/api"
	"github.com/rxdesk/rxdesk/internal/tablet"
)

// fakeFetcher counts calls and returns a canned result.
type fakeFetcher struct {
	calls   int
	tablets []tablet.Tablet
	err     error
}

func (f *fakeFetcher) ListTablets(context.Context) ([]tablet.Tablet, error) {
	f.calls++
	return f.tablets, f.err
}

// countingNotifier records every notification it receives.
type countingNotifier struct {
	notifications []Notification
}

func (n *countingNotifier) Notify(notification Notification) {
	n.notifications = append(n.notifications, notification)
}

func sampleTablets() []tablet.Tablet {
	return []tablet.Tablet{
		{ID: "abc12345", Name: "Paracetamol", GenericName: "Acetaminophen", Price: 12.5, CreatedAt: "t0", UpdatedAt: "t0"},
		{ID: "def67890", Name: "Ibuprofen", GenericName: "Ibuprofen", Price: 40, Description: "NSAID", CreatedAt: "t1", UpdatedAt: "t1"},
	}
}

// deliver runs a load command and feeds its message back into the model.
func deliver(t *testing.T, m *ListModel, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	loaded, ok := msg.(tabletsLoadedMsg)
	require.True(t, ok, "expected a tabletsLoadedMsg, got %T", msg)
	_, _ = m.Update(loaded)
}

// TestProvidedCollectionSkipsNetwork verifies a non-empty provided collection
// is displayed as-is with zero fetches.
func TestProvidedCollectionSkipsNetwork(t *testing.T) {
	fetcher := &fakeFetcher{}
	provided := sampleTablets()

	m := NewListModel(context.Background(), Options{Provided: provided, Fetcher: fetcher})
	cmd := m.startLoad()

	assert.Nil(t, cmd)
	assert.Equal(t, 0, fetcher.calls)
	assert.Equal(t, SourceProvided, m.Source())
	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, provided, m.Tablets())
}

// TestFetchWhenProvidedEmpty verifies an empty provided collection still
// fetches: provided-empty and absent are the same strategy.
func TestFetchWhenProvidedEmpty(t *testing.T) {
	fetcher := &fakeFetcher{tablets: sampleTablets()}

	m := NewListModel(context.Background(), Options{Provided: []tablet.Tablet{}, Fetcher: fetcher})
	cmd := m.startLoad()

	assert.Equal(t, SourceFetch, m.Source())
	assert.Equal(t, ViewStateLoading, m.State())
	assert.True(t, m.loading)

	deliver(t, m, cmd)

	assert.Equal(t, 1, fetcher.calls)
	assert.False(t, m.loading)
	assert.Equal(t, ViewStateList, m.State())
	assert.Equal(t, fetcher.tablets, m.Tablets())
}

// TestOneFetchPerRefresh verifies each refresh triggers exactly one fetch.
func TestOneFetchPerRefresh(t *testing.T) {
	fetcher := &fakeFetcher{tablets: sampleTablets()}

	m := NewListModel(context.Background(), Options{Fetcher: fetcher})
	deliver(t, m, m.startLoad())
	assert.Equal(t, 1, fetcher.calls)

	// Refresh key starts a second cycle, and only one.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	drainBatch(t, m, cmd())
	assert.Equal(t, 2, fetcher.calls)
}

// drainBatch feeds a command result into the model, unwrapping tea batches.
func drainBatch(t *testing.T, m *ListModel, msg tea.Msg) {
	t.Helper()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, cmd := range batch {
			if cmd != nil {
				drainBatch(t, m, cmd())
			}
		}
		return
	}
	_, _ = m.Update(msg)
}

// TestEmptyCollectionShowsEmptyState verifies [] renders the empty panel,
// not the error panel.
func TestEmptyCollectionShowsEmptyState(t *testing.T) {
	fetcher := &fakeFetcher{tablets: []tablet.Tablet{}}
	notifier := &countingNotifier{}

	m := NewListModel(context.Background(), Options{Fetcher: fetcher, Notifier: notifier})
	deliver(t, m, m.startLoad())

	assert.Equal(t, ViewStateEmpty, m.State())
	assert.Empty(t, notifier.notifications)

	view := m.View()
	assert.Contains(t, view, "No tablets found.")
	assert.NotContains(t, view, "retry")
}

// TestFailureNotifiesExactlyOnce verifies failure state, the status code in
// the message, and the single notification side effect.
func TestFailureNotifiesExactlyOnce(t *testing.T) {
	fetcher := &fakeFetcher{err: &api.StatusError{Code: 503, Status: "Service Unavailable"}}
	notifier := &countingNotifier{}

	m := NewListModel(context.Background(), Options{Fetcher: fetcher, Notifier: notifier})
	deliver(t, m, m.startLoad())

	assert.Equal(t, ViewStateError, m.State())
	assert.False(t, m.loading)
	assert.Contains(t, m.errMsg, "503")

	require.Len(t, notifier.notifications, 1)
	n := notifier.notifications[0]
	assert.Equal(t, SeverityDestructive, n.Severity)
	assert.Equal(t, "Failed to load tablets", n.Title)
	assert.Contains(t, n.Message, "503")

	view := m.View()
	assert.Contains(t, view, "503")
	assert.Contains(t, view, "r to retry")
}

// TestFailureRendersNotificationBanner verifies the most recent notification
// renders as a banner above the error panel and clears on the next load
// cycle.
func TestFailureRendersNotificationBanner(t *testing.T) {
	fetcher := &fakeFetcher{err: &api.StatusError{Code: 503, Status: "Service Unavailable"}}
	notifier := &countingNotifier{}

	m := NewListModel(context.Background(), Options{Fetcher: fetcher, Notifier: notifier})
	deliver(t, m, m.startLoad())

	// The banner keeps the notification's original casing; the panel heading
	// is uppercased, so this substring only comes from the banner.
	withBanner := m.View()
	assert.Contains(t, withBanner, failureTitle+":")

	// The recorded notification is what puts the banner on screen.
	m.lastNotification = nil
	assert.NotEqual(t, withBanner, m.View())

	// The next load cycle clears the banner.
	fetcher.err = nil
	fetcher.tablets = sampleTablets()
	deliver(t, m, m.startLoad())
	assert.Nil(t, m.lastNotification)
	assert.NotContains(t, m.View(), failureTitle+":")
}

// TestFailureWithBlankErrorUsesFallback verifies the generic message when the
// underlying error carries no text.
func TestFailureWithBlankErrorUsesFallback(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("  ")}
	notifier := &countingNotifier{}

	m := NewListModel(context.Background(), Options{Fetcher: fetcher, Notifier: notifier})
	deliver(t, m, m.startLoad())

	assert.Equal(t, genericLoadFailure, m.errMsg)
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, genericLoadFailure, notifier.notifications[0].Message)
}

// TestRetryAfterFailureClearsError verifies the retry affordance reloads the
// view and clears prior error state.
func TestRetryAfterFailureClearsError(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}

	m := NewListModel(context.Background(), Options{Fetcher: fetcher})
	deliver(t, m, m.startLoad())
	require.Equal(t, ViewStateError, m.State())

	// Next attempt succeeds.
	fetcher.err = nil
	fetcher.tablets = sampleTablets()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	require.NotNil(t, cmd)
	assert.Empty(t, m.errMsg)
	assert.Equal(t, ViewStateLoading, m.State())

	drainBatch(t, m, cmd())
	assert.Equal(t, ViewStateList, m.State())
}

// TestStaleResponseDiscarded verifies a late response from a superseded load
// cycle never overwrites newer state.
func TestStaleResponseDiscarded(t *testing.T) {
	fetcher := &fakeFetcher{tablets: sampleTablets()}

	m := NewListModel(context.Background(), Options{Fetcher: fetcher})
	staleCmd := m.startLoad()
	staleMsg := staleCmd()

	// A second cycle starts before the first response lands.
	freshCmd := m.startLoad()
	deliver(t, m, freshCmd)
	require.Equal(t, ViewStateList, m.State())

	// The stale response arrives last and must be dropped.
	fetcher.tablets = nil
	_, _ = m.Update(staleMsg)

	assert.Equal(t, ViewStateList, m.State())
	assert.Len(t, m.Tablets(), 2)
}

// TestViewRendersCardContents verifies the populated grid shows name,
// generic name, formatted price, and truncated identifier.
func TestViewRendersCardContents(t *testing.T) {
	m := NewListModel(context.Background(), Options{Provided: sampleTablets()})
	require.Nil(t, m.startLoad())

	view := m.View()
	assert.Contains(t, view, "Paracetamol")
	assert.Contains(t, view, "Acetaminophen")
	assert.Contains(t, view, "₹12.50")
	assert.Contains(t, view, "abc12345...")
	assert.Contains(t, view, "TABLETS (2)")
}

// TestQuitKeys verifies q and ctrl+c leave the program.
func TestQuitKeys(t *testing.T) {
	m := NewListModel(context.Background(), Options{Provided: sampleTablets()})
	require.Nil(t, m.startLoad())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.Equal(t, ViewStateQuitting, m.State())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())

	m2 := NewListModel(context.Background(), Options{Provided: sampleTablets()})
	require.Nil(t, m2.startLoad())
	_, cmd = m2.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, ViewStateQuitting, m2.State())
	assert.NotNil(t, cmd)
}

// TestWindowResizeRebuildsGrid verifies resize keeps the model consistent.
func TestWindowResizeRebuildsGrid(t *testing.T) {
	m := NewListModel(context.Background(), Options{Provided: sampleTablets()})
	require.Nil(t, m.startLoad())

	_, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	assert.Equal(t, 1, m.columns())

	_, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 20})
	assert.Equal(t, 4, m.columns())
	assert.Equal(t, ViewStateList, m.State())
}

// TestChunkTabletsPreservesOrder verifies row chunking keeps wire order.
func TestChunkTabletsPreservesOrder(t *testing.T) {
	tablets := []tablet.Tablet{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}, {ID: "5"}}

	rows := chunkTablets(tablets, 2)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[0][0].ID)
	assert.Equal(t, "2", rows[0][1].ID)
	assert.Equal(t, "5", rows[2][0].ID)

	assert.Nil(t, chunkTablets(nil, 3))
}
