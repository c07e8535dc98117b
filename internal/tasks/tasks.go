package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sync"

	"github.com/acrompton/shelf/internal/collections"
	"github.com/acrompton/shelf/internal/models"
	"github.com/acrompton/shelf/internal/services"
	"github.com/acrompton/shelf/internal/shared"
	"github.com/charmbracelet/log"
)

// DefaultMaxResults caps the search result list length.
const DefaultMaxResults = 5

const searchPrompt = `Search the web for music albums matching: "%s"

Find up to %d real albums. For each album find a direct image file URL for its cover art (a URL ending in an image extension like .jpg or .png, not a link to a webpage).

Include in your response a JSON array of objects, each with exactly these keys:
"artist", "album", "year", "imageUrl"`

// albumArrayPattern locates the first JSON array-of-objects substring
// embedded in free text. The lazy quantifier keeps the match to the
// first array when the text contains more than one; widestArrayPattern
// spans to the last closing bracket instead, for when a bracket inside
// a string value cuts the lazy match short.
var (
	albumArrayPattern  = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)
	widestArrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
)

// Catalog is the controller for the discovery and catalog state. It
// owns the prediction list, the current search results, the busy flag,
// and the staleness generation counter, and exposes the command
// operations the presentation layers call.
type Catalog struct {
	store     *collections.Store
	svc       services.Completer
	predictor *services.PredictionService
	logger    *log.Logger

	maxResults int

	mu          sync.Mutex
	predictions []string
	results     []models.SearchResult
	searching   bool
	gen         uint64
}

// NewCatalog creates the controller over a loaded collection store and
// a completion client.
func NewCatalog(store *collections.Store, svc services.Completer, logger *log.Logger, maxResults int) *Catalog {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	return &Catalog{
		store:      store,
		svc:        svc,
		predictor:  services.NewPredictionService(svc),
		logger:     logger,
		maxResults: maxResults,
	}
}

// Store exposes the underlying collection store for read access.
func (c *Catalog) Store() *collections.Store {
	return c.store
}

// Add appends a search candidate to the named collection.
func (c *Catalog) Add(ctx context.Context, name string, candidate models.SearchResult) (models.Record, error) {
	return c.store.Add(ctx, name, candidate)
}

// Remove deletes the record with the given id from the named collection.
func (c *Catalog) Remove(ctx context.Context, name string, id int64) error {
	return c.store.Remove(ctx, name, id)
}

// Suggest fetches typing suggestions for the query.
//
// On any failure the prediction list is cleared and the error is
// returned for logging only. Prediction failures never surface to the
// user. A fetch still in flight when a search starts resolves as
// [shared.ErrStale] and leaves the prediction list alone, so a late
// fetch cannot restore suggestions the search already cleared.
func (c *Catalog) Suggest(ctx context.Context, query string) ([]string, error) {
	c.mu.Lock()
	gen := c.gen
	c.mu.Unlock()

	predictions, err := c.predictor.Fetch(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return nil, fmt.Errorf("%w: %q", shared.ErrStale, query)
	}

	if err != nil {
		c.predictions = nil
		c.logger.Debug("cleared suggestions", "query", query, "error", err)
		return nil, err
	}

	c.predictions = predictions
	return predictions, nil
}

// ClearPredictions drops the transient suggestion list.
func (c *Catalog) ClearPredictions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.predictions = nil
}

// Predictions returns the current suggestion list.
func (c *Catalog) Predictions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	predictions := make([]string, len(c.predictions))
	copy(predictions, c.predictions)
	return predictions
}

// Results returns the most recently applied search results.
func (c *Catalog) Results() []models.SearchResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	results := make([]models.SearchResult, len(c.results))
	copy(results, c.results)
	return results
}

// Searching reports whether the most recent search is still in flight.
// Preventing re-entrant invocation is the caller's responsibility; the
// catalog does not queue concurrent searches.
func (c *Catalog) Searching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.searching
}

// Search executes one search-augmented completion for the query and
// applies the extracted album candidates as the current result set.
//
// Predictions are cleared the moment Search is invoked, before any
// network activity. Each invocation captures a generation counter; if a
// newer invocation starts before this one resolves, the late response
// is discarded without effect and [shared.ErrStale] is returned.
func (c *Catalog) Search(ctx context.Context, updates chan<- Update, query string) ([]models.SearchResult, error) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.searching = true
	c.predictions = nil
	c.mu.Unlock()

	c.send(updates, predictionsClearedUpdate())
	c.send(updates, searchStartedUpdate(query))

	req := services.CompletionRequest{
		Messages: services.UserMessage(fmt.Sprintf(searchPrompt, query, c.maxResults)),
		Tools:    []services.Tool{services.WebSearchTool},
	}

	resp, err := c.svc.Complete(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		// A newer search started while this one was in flight.
		c.send(updates, searchDiscardedUpdate(query))
		return nil, fmt.Errorf("%w: %q", shared.ErrStale, query)
	}

	c.searching = false

	if err != nil {
		c.send(updates, searchFailedUpdate(query, err))
		return nil, err
	}

	results, err := ExtractResults(resp.Text())
	if err != nil {
		c.send(updates, searchFailedUpdate(query, err))
		return nil, err
	}

	if len(results) > c.maxResults {
		results = results[:c.maxResults]
	}

	c.results = results
	c.send(updates, searchCompletedUpdate(query, len(results)))
	return results, nil
}

// send delivers an update without blocking. Full or nil channels drop
// the update.
func (c *Catalog) send(updates chan<- Update, update Update) {
	if updates == nil {
		return
	}
	select {
	case updates <- update:
	default:
	}
}

// ExtractResults locates the first JSON array-of-objects substring in
// the assembled completion text and parses it as album candidates.
//
// No match fails with [shared.ErrNoResults]; a match that is not valid
// JSON fails with [shared.ErrParse].
func ExtractResults(text string) ([]models.SearchResult, error) {
	match := albumArrayPattern.FindString(text)
	if match == "" {
		return nil, shared.ErrNoResults
	}

	var results []models.SearchResult
	if err := json.Unmarshal([]byte(match), &results); err != nil {
		wide := widestArrayPattern.FindString(text)
		if wide == match || json.Unmarshal([]byte(wide), &results) != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrParse, err)
		}
	}

	return results, nil
}
