package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/acrompton/shelf/internal/models"
	"github.com/acrompton/shelf/internal/shared"
	"github.com/acrompton/shelf/internal/tasks"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SearchView ViewState = iota
	ResultListView
	ShelfView
)

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	catalog   *tasks.Catalog
	debouncer *tasks.Debouncer

	width  int
	height int

	input       textinput.Model
	suggestions []string
	resultList  list.Model
	shelfList   list.Model
	shelf       string

	fires   chan string
	updates chan tasks.Update

	status string
	err    error
	help   help.Model
	keys   keyMap
}

type fireMsg string

type suggestionsMsg struct {
	suggestions []string
	err         error
}

type searchDoneMsg struct {
	results []models.SearchResult
	err     error
}

type statusUpdateMsg tasks.Update

type updatesDrainedMsg struct{}

type recordAddedMsg struct {
	shelf  string
	record models.Record
	err    error
}

type recordRemovedMsg struct {
	shelf string
	err   error
}

// NewModel creates a new TUI model over the catalog controller.
//
// The debounce timer fires on its own goroutine, so fires are forwarded
// through a channel and re-enter the model as messages.
func NewModel(ctx context.Context, catalog *tasks.Catalog, debounceDelay time.Duration) *Model {
	input := textinput.New()
	input.Placeholder = "Search for albums..."
	input.Focus()

	// Both lists need a delegate before the first WindowSizeMsg resizes
	// them; their items arrive later.
	resultList := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	resultList.Title = "Search Results"
	shelfList := list.New(nil, list.NewDefaultDelegate(), 0, 0)

	m := &Model{
		ctx:        ctx,
		view:       SearchView,
		catalog:    catalog,
		input:      input,
		resultList: resultList,
		shelfList:  shelfList,
		shelf:      models.CollectionHave,
		fires:      make(chan string, 8),
		help:       help.New(),
		keys:       newKeyMap(),
	}

	m.debouncer = tasks.NewDebouncer(debounceDelay,
		func(query string) { m.forwardFire(query) },
		func() { m.forwardFire("") },
	)

	return m
}

// forwardFire pushes a debounce fire into the message loop without
// blocking the timer goroutine.
func (m *Model) forwardFire(query string) {
	select {
	case m.fires <- query:
	default:
	}
}

// Init starts cursor blinking and the fire listener.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForFire())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultList.SetSize(msg.Width-4, msg.Height-8)
		m.shelfList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SearchView:
			return m.handleSearchKeys(msg)
		case ResultListView:
			return m.handleResultListKeys(msg)
		case ShelfView:
			return m.handleShelfKeys(msg)
		}

	case fireMsg:
		query := string(msg)
		if query == "" {
			m.suggestions = nil
			m.catalog.ClearPredictions()
			return m, m.waitForFire()
		}
		return m, tea.Batch(m.fetchSuggestions(query), m.waitForFire())

	case suggestionsMsg:
		if msg.err != nil {
			m.suggestions = nil
			return m, nil
		}
		m.suggestions = msg.suggestions
		return m, nil

	case searchDoneMsg:
		if errors.Is(msg.err, shared.ErrStale) {
			return m, nil
		}
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Search failed: %v", msg.err))
			return m, nil
		}
		items := make([]list.Item, len(msg.results))
		for i, result := range msg.results {
			items[i] = resultItem{result: result}
		}
		m.resultList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.resultList.Title = "Search Results"
		m.resultList.SetSize(m.width-4, m.height-8)
		m.view = ResultListView
		m.status = ""
		return m, nil

	case statusUpdateMsg:
		m.status = tasks.Update(msg).Message
		return m, m.waitForUpdate(m.updates)

	case updatesDrainedMsg:
		return m, nil

	case recordAddedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Add failed: %v", msg.err))
			return m, nil
		}
		m.status = styles.ok.Render(fmt.Sprintf("Added %s - %s to %s", msg.record.Artist, msg.record.Album, msg.shelf))
		return m, nil

	case recordRemovedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Remove failed: %v", msg.err))
			return m, nil
		}
		m.refreshShelf()
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case SearchView:
		return m.renderSearch()
	case ResultListView:
		return m.renderResultList()
	case ShelfView:
		return m.renderShelf()
	default:
		return ""
	}
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.debouncer.Cancel()
		m.input.SetValue("")
		m.suggestions = nil
		m.catalog.ClearPredictions()
		return m, nil
	case "tab":
		m.debouncer.Cancel()
		m.refreshShelf()
		m.view = ShelfView
		return m, nil
	case "enter":
		query := strings.TrimSpace(m.input.Value())
		if query == "" || m.catalog.Searching() {
			return m, nil
		}
		m.debouncer.Cancel()
		m.suggestions = nil
		return m, m.startSearch(query)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.debouncer.Input(m.input.Value())
	return m, cmd
}

func (m *Model) handleResultListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SearchView
		return m, nil
	case "tab":
		m.refreshShelf()
		m.view = ShelfView
		return m, nil
	case "h":
		return m, m.addSelected(models.CollectionHave)
	case "w":
		return m, m.addSelected(models.CollectionWant)
	}

	var cmd tea.Cmd
	m.resultList, cmd = m.resultList.Update(msg)
	return m, cmd
}

func (m *Model) handleShelfKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SearchView
		return m, nil
	case "tab":
		if m.shelf == models.CollectionHave {
			m.shelf = models.CollectionWant
		} else {
			m.shelf = models.CollectionHave
		}
		m.refreshShelf()
		return m, nil
	case "x":
		return m, m.removeSelected()
	}

	var cmd tea.Cmd
	m.shelfList, cmd = m.shelfList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ResultListView:
		m.resultList, cmd = m.resultList.Update(msg)
	case ShelfView:
		m.shelfList, cmd = m.shelfList.Update(msg)
	}
	return m, cmd
}

func (m *Model) waitForFire() tea.Cmd {
	return func() tea.Msg {
		return fireMsg(<-m.fires)
	}
}

func (m *Model) fetchSuggestions(query string) tea.Cmd {
	return func() tea.Msg {
		suggestions, err := m.catalog.Suggest(m.ctx, query)
		return suggestionsMsg{suggestions: suggestions, err: err}
	}
}

func (m *Model) startSearch(query string) tea.Cmd {
	m.updates = make(chan tasks.Update, 8)
	updates := m.updates

	return tea.Batch(
		func() tea.Msg {
			results, err := m.catalog.Search(m.ctx, updates, query)
			close(updates)
			return searchDoneMsg{results: results, err: err}
		},
		m.waitForUpdate(updates),
	)
}

func (m *Model) waitForUpdate(updates chan tasks.Update) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return updatesDrainedMsg{}
		}
		return statusUpdateMsg(update)
	}
}

func (m *Model) addSelected(shelf string) tea.Cmd {
	selected := m.resultList.SelectedItem()
	item, ok := selected.(resultItem)
	if !ok {
		return nil
	}

	return func() tea.Msg {
		record, err := m.catalog.Add(m.ctx, shelf, item.result)
		return recordAddedMsg{shelf: shelf, record: record, err: err}
	}
}

func (m *Model) removeSelected() tea.Cmd {
	selected := m.shelfList.SelectedItem()
	item, ok := selected.(recordItem)
	if !ok {
		return nil
	}
	shelf := m.shelf

	return func() tea.Msg {
		err := m.catalog.Remove(m.ctx, shelf, item.record.ID)
		return recordRemovedMsg{shelf: shelf, err: err}
	}
}

func (m *Model) refreshShelf() {
	records := m.catalog.Store().Records(m.shelf)
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = recordItem{record: record}
	}
	m.shelfList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.shelfList.Title = fmt.Sprintf("Shelf: %s (%d)", m.shelf, len(records))
	m.shelfList.SetSize(m.width-4, m.height-8)
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("Album Shelf")

	var suggestions string
	if len(m.suggestions) > 0 {
		var b strings.Builder
		for _, s := range m.suggestions {
			b.WriteString(styles.help.Render(fmt.Sprintf("  %s", s)))
			b.WriteString("\n")
		}
		suggestions = b.String()
	}

	var status string
	if m.catalog.Searching() {
		status = styles.warn.Render("Searching...")
	} else if m.status != "" {
		status = m.status
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.shelf, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s%s\n\n%s", title, m.input.View(), suggestions, status, helpView)
}

func (m *Model) renderResultList() string {
	helpKeys := []key.Binding{m.keys.have, m.keys.want, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	var status string
	if m.status != "" {
		status = fmt.Sprintf("%s\n", m.status)
	}

	return fmt.Sprintf("%s\n\n%s%s", m.resultList.View(), status, helpView)
}

func (m *Model) renderShelf() string {
	helpKeys := []key.Binding{m.keys.shelf, m.keys.remove, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.shelfList.View(), helpView)
}
