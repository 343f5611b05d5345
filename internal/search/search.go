// Package search provides the catalog search box and its results list.
package search

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/keymap"
	"github.com/llehouerou/lyrifi/internal/ui"
	"github.com/llehouerou/lyrifi/internal/ui/list"
)

// QueryMsg is emitted when the user submits a query.
type QueryMsg struct {
	Query string
}

// Model is the search box plus the results of the last query.
type Model struct {
	ui.Base
	input   textinput.Model
	results list.Model[Item]
	query   string // last submitted query
	loading bool
}

// New creates a new search model.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Search tracks, artists, albums, playlists..."
	ti.Prompt = "/ "
	ti.CharLimit = 256

	return Model{
		input:   ti,
		results: list.New[Item](ui.ScrollMargin),
	}
}

// SetSize sets the dimensions of the search box and results panel.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(width-6, 10)
	m.results.SetSize(width, height-ui.SearchBoxHeight)
}

// SetFocused focuses the results list.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.results.SetFocused(focused)
}

// FocusInput moves keyboard focus to the search box.
func (m *Model) FocusInput() tea.Cmd {
	return m.input.Focus()
}

// InputFocused reports whether keys go to the search box.
func (m Model) InputFocused() bool {
	return m.input.Focused()
}

// UpdateInput handles a key while the search box is focused.
// Enter submits the query, Esc leaves the box.
func (m *Model) UpdateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type { //nolint:exhaustive // other keys edit the text
	case tea.KeyEnter:
		m.input.Blur()
		query := m.input.Value()
		m.query = query
		m.loading = strings.TrimSpace(query) != ""
		return func() tea.Msg { return QueryMsg{Query: query} }
	case tea.KeyEsc:
		m.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// SetQuery fills the search box and submits text, as if typed.
func (m *Model) SetQuery(text string) tea.Cmd {
	m.input.SetValue(text)
	m.query = text
	m.loading = strings.TrimSpace(text) != ""
	return func() tea.Msg { return QueryMsg{Query: text} }
}

// SetResults shows r if it answers the last submitted query.
// Results of older queries are dropped.
func (m *Model) SetResults(query string, r *catalog.Results) bool {
	if query != m.query {
		return false
	}
	m.loading = false
	m.results.SetItems(Flatten(r))
	m.results.Reset()
	return true
}

// Apply performs a navigation action on the results list.
func (m *Model) Apply(action keymap.Action) bool {
	return m.results.Apply(action)
}

// Selected returns the result under the cursor.
func (m Model) Selected() (Item, bool) {
	return m.results.Selected()
}

// SelectID moves the cursor to the result with id and reports whether it exists.
func (m *Model) SelectID(id string) bool {
	for i, item := range m.results.Items() {
		if item.ID == id {
			m.results.Jump(i)
			return true
		}
	}
	return false
}

// Query returns the last submitted query.
func (m Model) Query() string {
	return m.query
}

// Loading reports whether a query is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Len returns the number of result rows.
func (m Model) Len() int {
	return m.results.Len()
}
