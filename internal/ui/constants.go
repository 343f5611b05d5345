// Package ui holds what the lyrifi panels share: sizing and layout constants.
package ui

const (
	// ScrollMargin is how many rows stay visible around the cursor.
	ScrollMargin = 3

	// BorderHeight is the top plus bottom border of a panel.
	BorderHeight = 2

	// HeaderHeight is a panel title line and its separator.
	HeaderHeight = 2

	// PanelOverhead is what a bordered panel with a header costs vertically.
	PanelOverhead = BorderHeight + HeaderHeight

	// SearchBoxHeight is the query input and its border.
	SearchBoxHeight = 3
)
