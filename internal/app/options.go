package app

import (
	"log/slog"

	"github.com/thenoetrevino/todoey/internal/events"
	"github.com/thenoetrevino/todoey/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	medium      storage.Medium
}

// WithEventPublisher sets the event publisher for the application.
// The caller keeps ownership; App.Close does not close it.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithMedium bypasses the configured backend. App.Close still closes it.
func WithMedium(m storage.Medium) Option {
	return func(cfg *appConfig) {
		cfg.medium = m
	}
}
