// Package wire provides dependency injection for the storefinder application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"sync"

	cliadapter "github.com/example/storefinder/internal/adapters/cli"
	"github.com/example/storefinder/internal/adapters/httpapi"
	"github.com/example/storefinder/internal/adapters/metrics"
	"github.com/example/storefinder/internal/adapters/source"
	"github.com/example/storefinder/internal/adapters/sqlite"
	"github.com/example/storefinder/internal/app"
	"github.com/example/storefinder/internal/config"
	"github.com/example/storefinder/internal/core/geo"
	"github.com/example/storefinder/internal/core/record"
	"github.com/example/storefinder/internal/db"
	"github.com/example/storefinder/internal/logger"
	"github.com/example/storefinder/internal/ports/primary"
	"github.com/example/storefinder/internal/ports/secondary"
)

// Overrides are command-line values that take precedence over the config
// file and environment. Empty fields are ignored.
type Overrides struct {
	ConfigDir     string
	Source        string
	DBPath        string
	Locale        string
	CityOrderFile string
	LogLevel      string
}

var (
	overrides Overrides

	cfg        *config.Config
	cfgOnce    sync.Once
	appLogger  *slog.Logger
	appMetrics *metrics.Metrics

	directoryService *app.DirectoryServiceImpl
	cacheService     primary.CacheService
	once             sync.Once
)

// Configure records command-line overrides. It must be called before any
// service is requested.
func Configure(o Overrides) {
	overrides = o
}

// Config returns the effective configuration.
func Config() *config.Config {
	cfgOnce.Do(initConfig)
	return cfg
}

func initConfig() {
	dir := overrides.ConfigDir
	if dir == "" {
		dir = "."
	}

	loaded, err := config.Load(dir)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	set := func(field *string, v string) {
		if v != "" {
			*field = v
		}
	}
	set(&loaded.Source, overrides.Source)
	set(&loaded.DBPath, overrides.DBPath)
	set(&loaded.Locale, overrides.Locale)
	set(&loaded.CityOrderFile, overrides.CityOrderFile)
	set(&loaded.LogLevel, overrides.LogLevel)

	cfg = loaded
	db.SetPath(cfg.DBPath)
}

// Logger returns the application logger (stderr).
func Logger() *slog.Logger {
	once.Do(initServices)
	return appLogger
}

// DirectoryService returns the singleton DirectoryService instance.
// The record set is empty until Load is called.
func DirectoryService() primary.DirectoryService {
	once.Do(initServices)
	return directoryService
}

// CacheService returns the singleton CacheService instance.
func CacheService() primary.CacheService {
	once.Do(initServices)
	return cacheService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	c := Config()

	appLogger = logger.New(c.LogLevel, os.Stderr)
	appMetrics = metrics.New()

	order, err := config.LoadCityOrder(c.CityOrderFile)
	if err != nil {
		log.Fatalf("failed to load city order: %v", err)
	}
	coll, err := geo.NewCollation(c.Locale)
	if err != nil {
		log.Fatalf("invalid locale %q: %v", c.Locale, err)
	}

	resolver := newResolver()

	src, err := resolver.Resolve(c.Source)
	if err != nil {
		log.Fatalf("failed to resolve source: %v", err)
	}

	directoryService = app.NewDirectoryService(src, order, coll, appLogger, appMetrics)
	cacheService = app.NewCacheService(lazyRepo{}, resolver, order, appLogger)
}

// Database returns the record cache connection, opening it if needed.
func Database() (*sql.DB, error) {
	Config()
	return db.GetDB()
}

// newResolver builds the source resolver. The cache is opened on first use
// so URL and file sources never touch it.
func newResolver() *source.Resolver {
	return source.NewResolver(nil, lazyCache{})
}

func recordRepository() (*sqlite.RecordRepository, error) {
	database, err := Database()
	if err != nil {
		return nil, err
	}
	return sqlite.NewRecordRepository(database), nil
}

// lazyCache reads the SQLite cache, opening the database on first fetch.
type lazyCache struct{}

func (lazyCache) Fetch(ctx context.Context) ([]record.Record, error) {
	repo, err := recordRepository()
	if err != nil {
		return nil, record.NewLoadError(record.LoadErrorIO, source.CacheScheme, err)
	}
	return sqlite.NewCacheSource(repo).Fetch(ctx)
}

func (lazyCache) Describe() string {
	return source.CacheScheme
}

// lazyRepo opens the database on first repository call.
type lazyRepo struct{}

func (lazyRepo) ReplaceAll(ctx context.Context, records []record.Record, src string) error {
	repo, err := recordRepository()
	if err != nil {
		return err
	}
	return repo.ReplaceAll(ctx, records, src)
}

func (lazyRepo) List(ctx context.Context) ([]record.Record, error) {
	repo, err := recordRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

func (lazyRepo) Count(ctx context.Context) (int, error) {
	repo, err := recordRepository()
	if err != nil {
		return 0, err
	}
	return repo.Count(ctx)
}

func (lazyRepo) LastImport(ctx context.Context) (*secondary.ImportRecord, error) {
	repo, err := recordRepository()
	if err != nil {
		return nil, err
	}
	return repo.LastImport(ctx)
}

var (
	_ secondary.RecordSource     = lazyCache{}
	_ secondary.RecordRepository = lazyRepo{}
)

// DirectoryAdapter returns a new DirectoryAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func DirectoryAdapter() *cliadapter.DirectoryAdapter {
	return DirectoryAdapterWithOutput(os.Stdout)
}

// DirectoryAdapterWithOutput returns a new DirectoryAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func DirectoryAdapterWithOutput(out io.Writer) *cliadapter.DirectoryAdapter {
	once.Do(initServices)
	return cliadapter.NewDirectoryAdapter(directoryService, out)
}

// CacheAdapter returns a new CacheAdapter writing to stdout.
func CacheAdapter() *cliadapter.CacheAdapter {
	once.Do(initServices)
	return cliadapter.NewCacheAdapter(cacheService, os.Stdout)
}

// SelectionController starts an interactive session rendering to observer.
func SelectionController(observer primary.SnapshotObserver) *app.SelectionController {
	once.Do(initServices)
	return directoryService.Controller(observer)
}

// HTTPHandler returns the JSON API router including /metrics.
func HTTPHandler() http.Handler {
	once.Do(initServices)
	return httpapi.NewRouter(httpapi.New(directoryService, appLogger), appMetrics.Handler())
}
