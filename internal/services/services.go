// package services defines interface Completer for the external completion endpoint
package services

import (
	"context"
	"strings"
)

// Completer defines the single operation the discovery layers need
// from the external completion endpoint.
type Completer interface {
	// Complete sends one completion request and returns the assembled
	// response. Transport failures wrap [shared.ErrNetwork].
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}

// CompletionRequest is the wire shape of a messages request.
//
// Model and MaxTokens may be left zero; the client fills them from its
// configuration.
type CompletionRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
	Tools     []Tool    `json:"tools,omitempty"`
}

// Message is a single conversational turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Tool enables an endpoint capability for one request.
type Tool struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// WebSearchTool enables retrieval-augmented generation for a request.
var WebSearchTool = Tool{Type: "web_search", Name: "web_search"}

// UserMessage builds the messages slice for a single user prompt.
func UserMessage(prompt string) []Message {
	return []Message{{Role: "user", Content: prompt}}
}

// ContentBlock is one segment of a completion response. Search-enabled
// responses interleave tool-use and tool-result segments with plain
// text segments.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// CompletionResponse is the wire shape of a messages response.
type CompletionResponse struct {
	ID         string         `json:"id,omitempty"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason,omitempty"`
}

// Text concatenates the plain-text segments of the response in their
// original order, skipping tool-use and tool-result segments.
func (r *CompletionResponse) Text() string {
	var b strings.Builder
	for _, block := range r.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}
