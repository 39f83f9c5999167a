package app

import (
	"context"
	"fmt"
	"os"
	"sync"

	"atelier-storefront/internal/cart"
	"atelier-storefront/internal/command"
	"atelier-storefront/internal/commerce"
	"atelier-storefront/internal/config"
	"atelier-storefront/internal/content"
	"atelier-storefront/internal/logger"
	"atelier-storefront/internal/notify"
	"atelier-storefront/internal/session"
)

type App struct {
	deps        *command.Deps
	bus         notify.Bus
	unsubscribe func()
	rendered    sync.WaitGroup
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	commerceClient := commerce.NewClient(cfg.CommerceEndpoint, cfg.StorefrontToken, commerce.Options{
		Timeout:        cfg.HTTPTimeout,
		RequestsPerSec: cfg.RequestsPerSec,
		Burst:          cfg.RequestBurst,
	}, log)

	var contentClient *content.Client
	if cfg.ContentEndpoint != "" {
		contentClient = content.NewClient(cfg.ContentEndpoint, cfg.ContentToken, cfg.HTTPTimeout)
	}

	persister := session.NewFilePersister(cfg.SessionFile)
	sessionStore := session.New(persister, log)
	sessions := session.NewManager(sessionStore, commerceClient, log)

	bus := notify.NewBus()

	app := &App{
		deps: &command.Deps{
			Config:   cfg,
			Sessions: sessions,
			Cart:     cart.New(),
			Commerce: commerceClient,
			Content:  contentClient,
			Notices:  bus,
			In:       os.Stdin,
			Out:      os.Stdout,
			Log:      log,
		},
		bus: bus,
	}
	app.renderNotices()

	return app, nil
}

// renderNotices prints every published notice to stderr, the terminal stand-in
// for the storefront's toast stack.
func (a *App) renderNotices() {
	notices, unsubscribe := a.bus.Subscribe()
	a.unsubscribe = unsubscribe

	a.rendered.Add(1)
	go func() {
		defer a.rendered.Done()
		for n := range notices {
			prefix := "•"
			switch n.Level {
			case notify.LevelSuccess:
				prefix = "✓"
			case notify.LevelError, notify.LevelWarning:
				prefix = "!"
			}

			if n.Field != "" {
				fmt.Fprintf(os.Stderr, "%s %s %s\n", prefix, n.Field, n.Message)
			} else {
				fmt.Fprintf(os.Stderr, "%s %s\n", prefix, n.Message)
			}
		}
	}()
}

// Run restores the persisted session once and dispatches the subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	a.deps.Sessions.Restore(ctx)

	err := command.Run(ctx, a.deps, args)

	a.unsubscribe()
	a.rendered.Wait()
	return err
}
