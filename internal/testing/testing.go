// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
)

// MemoryGateway is an in-memory test double for [repositories.Gateway].
//
// It records every Set in order so tests can assert write-through
// behavior, and can be made to fail on demand.
type MemoryGateway struct {
	mu     sync.Mutex
	values map[string]string
	sets   []string
	getErr error
	setErr error
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{values: make(map[string]string)}
}

func (g *MemoryGateway) Get(ctx context.Context, key string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.getErr != nil {
		return "", false, g.getErr
	}
	value, ok := g.values[key]
	return value, ok, nil
}

func (g *MemoryGateway) Set(ctx context.Context, key, value string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.setErr != nil {
		return g.setErr
	}
	g.values[key] = value
	g.sets = append(g.sets, key)
	return nil
}

// Seed stores a value without recording it as a write.
func (g *MemoryGateway) Seed(key, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.values[key] = value
}

// Value returns the currently stored value for key.
func (g *MemoryGateway) Value(key string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	value, ok := g.values[key]
	return value, ok
}

// SetKeys returns the keys written via Set, in order.
func (g *MemoryGateway) SetKeys() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	keys := make([]string, len(g.sets))
	copy(keys, g.sets)
	return keys
}

// FailGets makes subsequent Get calls return err (nil to clear).
func (g *MemoryGateway) FailGets(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.getErr = err
}

// FailSets makes subsequent Set calls return err (nil to clear).
func (g *MemoryGateway) FailSets(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.setErr = err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

var _ io.ReadCloser = (*FCloser)(nil)

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
