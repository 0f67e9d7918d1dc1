// Package app wires the configured storage medium, the data store and the
// event bus into one container.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/todoey/internal/config"
	"github.com/thenoetrevino/todoey/internal/database"
	"github.com/thenoetrevino/todoey/internal/datastore"
	"github.com/thenoetrevino/todoey/internal/events"
	"github.com/thenoetrevino/todoey/internal/models"
	"github.com/thenoetrevino/todoey/internal/storage"
	"github.com/thenoetrevino/todoey/internal/storage/filestore"
	"github.com/thenoetrevino/todoey/internal/storage/memstore"
)

// fileStoreDir is the subdirectory of the data directory used by the file backend
const fileStoreDir = "records"

// App holds the data store and its collaborators.
// This is the main application container that manages their lifecycles.
type App struct {
	// Store is the only writer of persisted state
	Store datastore.DataStore

	// Events receives a notification after every committed mutation
	Events events.EventPublisher

	medium     storage.Medium
	ownsEvents bool
	logger     *slog.Logger
}

// New opens the configured medium and builds the data store over it.
// Nothing is read from the medium until the first store operation.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &appConfig{}
	for _, opt := range opts {
		opt(options)
	}

	logger := options.logger
	if logger == nil {
		logger = slog.Default()
	}

	codec, err := datastore.CodecByName(cfg.Storage.Codec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}

	medium := options.medium
	if medium == nil {
		medium, err = openMedium(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	a := &App{
		Events: options.eventClient,
		medium: medium,
		logger: logger,
	}
	if a.Events == nil {
		a.Events = events.NewBus(events.DefaultBufferSize)
		a.ownsEvents = true
	}

	a.Store = datastore.New(medium,
		datastore.WithCodec(codec),
		datastore.WithEventPublisher(a.Events),
		datastore.WithLogger(logger),
		datastore.WithColorPicker(colorPicker(cfg.Categories)),
	)

	logger.Debug("app initialized",
		"backend", cfg.Storage.Backend,
		"codec", codec.Name())
	return a, nil
}

// openMedium opens the backend named by storage.backend
func openMedium(ctx context.Context, cfg *config.Config) (storage.Medium, error) {
	backend := strings.ToLower(cfg.Storage.Backend)
	if backend == config.BackendMemory {
		return memstore.New(), nil
	}

	dir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}

	switch backend {
	case config.BackendFile:
		m, err := filestore.Open(filepath.Join(dir, fileStoreDir))
		if err != nil {
			return nil, fmt.Errorf("failed to open file storage: %w", err)
		}
		return m, nil
	case config.BackendSQLite:
		m, err := database.Open(ctx, filepath.Join(dir, database.DBFileName))
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: unknown storage backend %q", config.ErrInvalidConfig, cfg.Storage.Backend)
}

// colorPicker returns the color tag chooser for categories created without one
func colorPicker(cfg config.CategoryConfig) func() string {
	if cfg.RandomColor && len(models.FlatColors) > 0 {
		return func() string {
			return models.FlatColors[rand.IntN(len(models.FlatColors))]
		}
	}
	color := cfg.DefaultColor
	if color == "" {
		color = models.DefaultColorTag
	}
	return func() string { return color }
}

// Close performs cleanup of application resources.
// The event bus is closed only if App created it.
func (a *App) Close() error {
	var errs []error
	if a.ownsEvents && a.Events != nil {
		if bus, ok := a.Events.(*events.Bus); ok {
			m := bus.Metrics()
			a.logger.Debug("event bus closing",
				"sent", m.EventsSent,
				"delivered", m.EventsDelivered,
				"dropped", m.EventsDropped,
				"uptime", m.Uptime)
		}
		if err := a.Events.Close(); err != nil && !errors.Is(err, events.ErrClosed) {
			errs = append(errs, fmt.Errorf("close events: %w", err))
		}
	}
	if a.medium != nil {
		if err := a.medium.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close storage: %w", err))
		}
	}
	return errors.Join(errs...)
}
