// Package listview provides a virtual scrolling list for Bubble Tea TUIs.
//
// Only the rows that fit the viewport are rendered, keeping render cost
// proportional to the terminal height rather than the collection size. Items
// may span multiple terminal rows (the tablet card grid renders each row as
// a seven-row card strip); itemHeight tells the model how many items fit one
// page. Keyboard navigation covers arrows, page up/down, home/end, and
// vim-style j/k.
package listview
