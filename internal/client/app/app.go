// Package app wires the community client together with fx.
package app

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"

	"go.uber.org/fx"

	"github.com/dmitrijs2005/capcheck/internal/client/cli"
	"github.com/dmitrijs2005/capcheck/internal/client/client"
	"github.com/dmitrijs2005/capcheck/internal/client/config"
	"github.com/dmitrijs2005/capcheck/internal/client/identity"
	"github.com/dmitrijs2005/capcheck/internal/client/picker"
	"github.com/dmitrijs2005/capcheck/internal/client/services"
	"github.com/dmitrijs2005/capcheck/internal/client/submission"
	"github.com/dmitrijs2005/capcheck/internal/logging"
)

// Terminal is the input and output the REPL and its prompts share.
type Terminal struct {
	In  *bufio.Reader
	Out io.Writer
}

// StdTerminal attaches to the process's stdin and stdout.
func StdTerminal() Terminal {
	return Terminal{In: bufio.NewReader(os.Stdin), Out: os.Stdout}
}

// Module needs a *config.Config and a Terminal supplied by the caller.
var Module = fx.Options(
	fx.Provide(
		newLogger,
		newDatabase,
		fx.Annotate(newIdentityStore, fx.As(new(identity.Store))),
		fx.Annotate(newAPIClient, fx.As(new(client.Client))),
		services.NewPreuploadService,
		fx.Annotate(newPicker, fx.As(new(picker.Picker))),
		newBuilder,
		fx.Annotate(cli.NewConsoleNotifier, fx.As(new(services.Notifier))),
		fx.Annotate(newController, fx.As(new(cli.Screen))),
		newWatcher,
		func(w *services.ConnectivityWatcher) cli.ModeSource { return w },
		newCLI,
	),
	fx.Invoke(run),
)

func newLogger(lc fx.Lifecycle, cfg *config.Config) (logging.Logger, error) {
	l, flush, err := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		SentryDSN: cfg.SentryDSN,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			flush()
			return nil
		},
	})
	return l, nil
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config, log logging.Logger) (*sql.DB, error) {
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DBPath, "error", err)
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return db.Close()
		},
	})
	return db, nil
}

func newIdentityStore(db *sql.DB, cfg *config.Config) *identity.SQLiteStore {
	return identity.NewSQLiteStore(db, cfg.DefaultUserID)
}

func newAPIClient(cfg *config.Config, log logging.Logger) (*client.HTTPClient, error) {
	return client.NewHTTPClient(cfg.BaseURL, &http.Client{Timeout: cfg.RequestTimeout}, log)
}

func newPicker(term Terminal, cfg *config.Config, pre *services.PreuploadService, log logging.Logger) *picker.FilePicker {
	return picker.NewFilePicker(cli.NewPrompter(term.In, term.Out), cfg.LibraryDir, cfg.WorkDir,
		cfg.CompressionQuality, log, picker.WithTracker(pre))
}

func newBuilder(cfg *config.Config) *submission.Builder {
	return submission.NewBuilder(submission.Defaults{
		Latitude:   cfg.Latitude,
		Longitude:  cfg.Longitude,
		MushroomID: cfg.MushroomID,
	})
}

func newController(store identity.Store, api client.Client, p picker.Picker, b *submission.Builder,
	n services.Notifier, pre *services.PreuploadService, log logging.Logger, cfg *config.Config) *services.Controller {
	return services.NewController(store, api, p, b, n, log, services.Options{
		KeepFeedOnError: cfg.KeepFeedOnError,
		Cleaner:         pre,
	})
}

func newWatcher(api client.Client, cfg *config.Config, log logging.Logger) *services.ConnectivityWatcher {
	return services.NewConnectivityWatcher(api, cfg.OnlineCheckInterval, log, nil)
}

func newCLI(screen cli.Screen, modes cli.ModeSource, term Terminal, log logging.Logger) *cli.App {
	return cli.NewApp(screen, modes, term.In, term.Out, log)
}

// run removes leftover preuploads, then starts the watcher and the REPL;
// leaving the REPL shuts the app down.
func run(lc fx.Lifecycle, sd fx.Shutdowner, a *cli.App, w *services.ConnectivityWatcher,
	pre *services.PreuploadService, log logging.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if n, err := pre.Sweep(startCtx); err != nil {
				log.Warn(startCtx, "preupload sweep incomplete", "removed", n, "error", err)
			} else if n > 0 {
				log.Info(startCtx, "removed leftover preuploads", "count", n)
			}

			if err := w.Start(ctx); err != nil {
				log.Warn(ctx, "connectivity watcher not started", "error", err)
			}

			go func() {
				a.Run(ctx)
				if err := sd.Shutdown(); err != nil {
					log.Error(ctx, "shutdown failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return w.Stop()
		},
	})
}
