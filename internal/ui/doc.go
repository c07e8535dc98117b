// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for album discovery:
//  1. [SearchView] : Type a query with live, debounced suggestions
//  2. [ResultListView] : Browse search results and add albums to a shelf
//  3. [ShelfView] : Review the have/want shelves and remove records
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Debounced suggestion fires and search status updates flow through channels into
// the message loop, so timer callbacks and in-flight searches never touch model
// state directly.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, tab, h/w, x, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
