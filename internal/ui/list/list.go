// Package list provides a generic scrollable list driven by keymap actions.
package list

import (
	"github.com/llehouerou/lyrifi/internal/keymap"
	"github.com/llehouerou/lyrifi/internal/ui"
)

// Model is a scrollable list with a cursor.
// The parent renders the rows returned by VisibleRange.
type Model[T any] struct {
	ui.Base
	items  []T
	pos    int // cursor position
	offset int // first visible item
	margin int // items kept visible above/below the cursor
}

// New creates a new list with the given scroll margin.
func New[T any](margin int) Model[T] {
	return Model[T]{margin: margin}
}

// SetItems replaces all items and clamps the cursor to bounds.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	if len(items) == 0 {
		m.pos, m.offset = 0, 0
		return
	}
	m.pos = clamp(m.pos, len(items)-1)
	m.ensureVisible()
}

// Reset moves the cursor back to the first item.
func (m *Model[T]) Reset() {
	m.pos, m.offset = 0, 0
}

// Items returns the current items slice.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor, or false if the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	return m.items[m.pos], true
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.pos
}

// Jump moves the cursor to pos, clamped to bounds.
func (m *Model[T]) Jump(pos int) {
	if len(m.items) == 0 {
		return
	}
	m.pos = clamp(pos, len(m.items)-1)
	m.ensureVisible()
}

// Apply performs a navigation action and reports whether it was one.
func (m *Model[T]) Apply(action keymap.Action) bool {
	switch action { //nolint:exhaustive // only navigation actions move the cursor
	case keymap.ActionMoveUp:
		m.Jump(m.pos - 1)
	case keymap.ActionMoveDown:
		m.Jump(m.pos + 1)
	case keymap.ActionJumpStart:
		m.Jump(0)
	case keymap.ActionJumpEnd:
		m.Jump(len(m.items) - 1)
	default:
		return false
	}
	return true
}

// VisibleRange returns [start, end) indices of the rows that fit in the panel.
func (m Model[T]) VisibleRange() (start, end int) {
	height := m.ListHeight(ui.PanelOverhead)
	if len(m.items) == 0 || height <= 0 {
		return 0, 0
	}
	return m.offset, min(m.offset+height, len(m.items))
}

func (m *Model[T]) ensureVisible() {
	height := m.ListHeight(ui.PanelOverhead)
	if height <= 0 {
		return
	}
	margin := min(m.margin, (height-1)/2)

	if m.pos < m.offset+margin {
		m.offset = max(m.pos-margin, 0)
	}
	if m.pos >= m.offset+height-margin {
		m.offset = m.pos - height + margin + 1
	}
	m.offset = clamp(m.offset, max(len(m.items)-height, 0))
}

// SetSize sets the panel dimensions and keeps the cursor visible.
func (m *Model[T]) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.ensureVisible()
}

func clamp(v, maxVal int) int {
	return min(max(v, 0), maxVal)
}
