// Package app assembles the catalog service: configuration, logging, the
// database pool, global middleware and routes.
//
//	a := app.New().
//	    AutoMigrate(&models.Product{}).
//	    Routes(routes.Register).
//	    Seeder(seeders.RunAll)
//	if err := a.Boot(ctx); err != nil { ... }
//	defer a.Close()
//	return a.Serve(ctx)
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"text/tabwriter"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalog/config"
	"github.com/shashiranjanraj/catalog/internal/server"
	"github.com/shashiranjanraj/catalog/pkg/database"
	"github.com/shashiranjanraj/catalog/pkg/logger"
	"github.com/shashiranjanraj/catalog/pkg/router"
)

// RoutesFunc registers routes; db is the application's pool.
type RoutesFunc func(r *router.Router, db *gorm.DB)

// SeedFunc fills the database with demo data, reporting progress to out.
type SeedFunc func(ctx context.Context, db *gorm.DB, out io.Writer) error

type Application struct {
	routesFns []RoutesFunc
	models    []interface{}
	seed      SeedFunc

	db     *gorm.DB
	ownsDB bool
	sink   *logger.MongoSink
}

func New() *Application {
	return &Application{}
}

// Routes adds a route-registration callback. Callbacks run in order.
func (a *Application) Routes(fn RoutesFunc) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// AutoMigrate adds GORM models to migrate during Boot.
func (a *Application) AutoMigrate(models ...interface{}) *Application {
	a.models = append(a.models, models...)
	return a
}

func (a *Application) Seeder(fn SeedFunc) *Application {
	a.seed = fn
	return a
}

// WithDB uses db instead of opening one from config. Close leaves it open.
func (a *Application) WithDB(db *gorm.DB) *Application {
	a.db = db
	a.ownsDB = false
	return a
}

// Boot loads config, sets up logging, opens the pool and migrates.
func (a *Application) Boot(ctx context.Context) error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("app: load config: %w", err)
	}

	a.setupLogging(ctx)

	if a.db == nil {
		db, err := database.Open(ctx, database.Options{
			Driver:       config.DatabaseDriver(),
			DSN:          config.DatabaseDSN(),
			MaxOpenConns: config.DatabaseMaxOpenConns(),
			MaxIdleConns: config.DatabaseMaxIdleConns(),
		})
		if err != nil {
			return err
		}
		a.db = db
		a.ownsDB = true
		logger.Info("database connected", "driver", config.DatabaseDriver())
	}

	if len(a.models) > 0 {
		if err := a.db.WithContext(ctx).AutoMigrate(a.models...); err != nil {
			return fmt.Errorf("app: auto-migrate: %w", err)
		}
		logger.Debug("auto-migrated models", "count", len(a.models))
	}
	return nil
}

func (a *Application) setupLogging(ctx context.Context) {
	opts := logger.Options{
		Production: config.IsProduction(),
		Level:      config.LogLevel(),
	}

	if uri := config.LogMongoURI(); uri != "" && a.sink == nil {
		sink, err := logger.NewMongoSink(ctx, uri, config.LogMongoDB(), config.LogMongoCollection(), slog.LevelInfo)
		if err != nil {
			logger.Warn("mongo log sink disabled", "error", err)
		} else {
			a.sink = sink
		}
	}
	if a.sink != nil {
		opts.Extra = []slog.Handler{a.sink}
	}

	logger.Setup(opts)
}

// DB returns the pool opened (or supplied) at Boot.
func (a *Application) DB() *gorm.DB { return a.db }

// Handler builds the full HTTP handler.
func (a *Application) Handler() http.Handler {
	return a.buildRouter().Handler()
}

// Serve listens on APP_PORT until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	return server.Run(ctx, ":"+config.AppPort(), a.Handler())
}

// Seed runs the registered seeder.
func (a *Application) Seed(ctx context.Context, out io.Writer) error {
	if a.seed == nil {
		fmt.Fprintln(out, "No seeder registered.")
		return nil
	}
	if err := a.seed(ctx, a.db, out); err != nil {
		return err
	}
	fmt.Fprintln(out, "Seeding complete.")
	return nil
}

// PrintRoutes writes a METHOD/PATH/NAME table of every route to out.
// It does not need Boot.
func (a *Application) PrintRoutes(out io.Writer) error {
	infos := a.buildRouter().Routes()

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "METHOD\tPATH\tNAME")
	fmt.Fprintln(w, "------\t----\t----")
	for _, ri := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
	}
	return w.Flush()
}

// Close flushes the log sink and releases the pool if Boot opened it.
func (a *Application) Close() error {
	if a.sink != nil {
		a.sink.Close()
		a.sink = nil
		logger.Setup(logger.Options{Production: config.IsProduction(), Level: config.LogLevel()})
	}
	if a.db != nil && a.ownsDB {
		err := database.Close(a.db)
		a.db = nil
		return err
	}
	return nil
}
