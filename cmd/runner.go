package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/acrompton/shelf/internal/collections"
	"github.com/acrompton/shelf/internal/repositories"
	"github.com/acrompton/shelf/internal/services"
	"github.com/acrompton/shelf/internal/shared"
	"github.com/acrompton/shelf/internal/tasks"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	svc        services.Completer
	gateway    repositories.Gateway
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	store      *collections.Store
	catalog    *tasks.Catalog
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Service    services.Completer
	Gateway    repositories.Gateway
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	r := &Runner{
		config:     opts.Config,
		svc:        opts.Service,
		gateway:    opts.Gateway,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}

	if opts.Gateway != nil {
		r.store = collections.NewStore(opts.Gateway, opts.Logger)
		r.catalog = tasks.NewCatalog(r.store, opts.Service, opts.Logger, opts.Config.Search.MaxResults)
	}

	return r
}

// SetLogger replaces the runner's logger after construction.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// requireCatalog ensures the collection store is wired and loaded.
func (r *Runner) requireCatalog(ctx context.Context) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: storage not initialized, run 'shelf setup database'", shared.ErrServiceUnavailable)
	}
	if !r.store.Loaded() {
		if err := r.store.Load(ctx); err != nil {
			return fmt.Errorf("failed to load collections (run 'shelf setup database'?): %w", err)
		}
	}
	return nil
}

// requireService ensures the completion client is configured.
func (r *Runner) requireService() error {
	if r.svc == nil {
		return fmt.Errorf("%w: set api.key in config.toml", shared.ErrMissingAPIKey)
	}
	return nil
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, listCommand, addCommand, removeCommand, exportCommand, searchCommand, suggestCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
