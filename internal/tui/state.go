package tui

// ViewState represents the current view of the tablet list TUI. Exactly one
// view renders per state.
type ViewState int

const (
	// ViewStateLoading indicates a fetch is in flight.
	ViewStateLoading ViewState = iota
	// ViewStateError indicates the last load attempt failed.
	ViewStateError
	// ViewStateEmpty indicates a successful load returned zero records.
	ViewStateEmpty
	// ViewStateList indicates a successful load with records to display.
	ViewStateList
	// ViewStateQuitting indicates the application is exiting.
	ViewStateQuitting
)

// DataSource is the strategy a load cycle uses to obtain its records. It is
// chosen explicitly once per cycle, never inferred mid-cycle, so a provided
// empty collection and an absent collection behave identically (both fetch).
type DataSource int

const (
	// SourceFetch loads the collection from the inventory service.
	SourceFetch DataSource = iota
	// SourceProvided copies a caller-supplied collection, skipping the
	// network entirely.
	SourceProvided
)
