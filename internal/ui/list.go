package ui

import (
	"fmt"

	"github.com/acrompton/shelf/internal/models"
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = resultItem{}
	_ list.Item = recordItem{}
)

// resultItem wraps [models.SearchResult] to implement [list.Item].
type resultItem struct {
	result models.SearchResult
}

func (i resultItem) FilterValue() string { return i.result.Album }
func (i resultItem) Title() string {
	return fmt.Sprintf("%s - %s", i.result.Artist, i.result.Album)
}
func (i resultItem) Description() string {
	if i.result.Year == "" {
		return "year unknown"
	}
	return i.result.Year
}

// recordItem wraps [models.Record] to implement [list.Item].
type recordItem struct {
	record models.Record
}

func (i recordItem) FilterValue() string { return i.record.Album }
func (i recordItem) Title() string {
	return fmt.Sprintf("%s - %s", i.record.Artist, i.record.Album)
}
func (i recordItem) Description() string {
	desc := i.record.Year
	if desc == "" {
		desc = "year unknown"
	}
	if i.record.AddedDate != "" {
		desc = fmt.Sprintf("%s • added %s", desc, i.record.AddedDate)
	}
	return desc
}
