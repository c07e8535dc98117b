package tasks

import "fmt"

// Update represents a state-change event during a discovery operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type Update struct {
	Phase   Phase  // Operation phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	SearchStarted Phase = iota
	SearchCompleted
	SearchFailed
	SearchDiscarded
	PredictionsCleared
)

func (p Phase) String() string {
	switch p {
	case SearchStarted:
		return "search_started"
	case SearchCompleted:
		return "search_completed"
	case SearchFailed:
		return "search_failed"
	case SearchDiscarded:
		return "search_discarded"
	case PredictionsCleared:
		return "predictions_cleared"
	default:
		return ""
	}
}

func searchStartedUpdate(query string) Update {
	return Update{
		Phase:   SearchStarted,
		Message: fmt.Sprintf("Searching for %q...", query),
	}
}

func searchCompletedUpdate(query string, count int) Update {
	return Update{
		Phase:   SearchCompleted,
		Message: fmt.Sprintf("Found %d albums for %q", count, query),
		Data:    count,
	}
}

func searchFailedUpdate(query string, err error) Update {
	return Update{
		Phase:   SearchFailed,
		Message: fmt.Sprintf("Search for %q failed: %v", query, err),
		Data:    err,
	}
}

func searchDiscardedUpdate(query string) Update {
	return Update{
		Phase:   SearchDiscarded,
		Message: fmt.Sprintf("Discarded stale results for %q", query),
	}
}

func predictionsClearedUpdate() Update {
	return Update{
		Phase:   PredictionsCleared,
		Message: "Cleared suggestions",
	}
}
