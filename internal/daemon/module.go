package daemon

import (
	"context"
	"time"

	"github.com/matheus3301/dmsync/internal/api"
	"github.com/matheus3301/dmsync/internal/bus"
	"github.com/matheus3301/dmsync/internal/chat"
	"github.com/matheus3301/dmsync/internal/config"
	"github.com/matheus3301/dmsync/internal/gateway"
	"github.com/matheus3301/dmsync/internal/index"
	"github.com/matheus3301/dmsync/internal/lock"
	"github.com/matheus3301/dmsync/internal/logging"
	"github.com/matheus3301/dmsync/internal/metrics"
	"github.com/matheus3301/dmsync/internal/paths"
	"github.com/matheus3301/dmsync/internal/presence"
	"github.com/matheus3301/dmsync/internal/roster"
	"github.com/matheus3301/dmsync/internal/status"
	"github.com/matheus3301/dmsync/internal/store"
	"github.com/matheus3301/dmsync/internal/store/kv"
	"github.com/matheus3301/dmsync/internal/sync"
	"github.com/matheus3301/dmsync/internal/unread"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	rosterFetchTimeout = 5 * time.Second
	streamDrainTimeout = 2 * time.Second
)

// Params holds the resolved instance configuration passed to the fx module.
type Params struct {
	Instance   string
	Config     *config.Config
	SocketPath string // optional override for testing; empty = use default
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	if p.Config == nil {
		p.Config = config.Default()
	}
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideBackend,
			providePublisher,
			metrics.New,
			provideRoster,
			provideIndex,
			provideSyncEngine,
			provideTracker,
			provideCounter,
			provideChatService,
			provideAPIService,
			provideGateway,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

// WithZapLogger routes fx's own events through the daemon logger.
func WithZapLogger() fx.Option {
	return fx.WithLogger(func(l *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: l.Named("fx")}
	})
}

func provideLogger(p Params) (*zap.Logger, error) {
	level, err := p.Config.Level()
	if err != nil {
		return nil, err
	}
	return logging.New(paths.LogPath(p.Instance), p.Instance, level)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(logger *zap.Logger) *status.Machine {
	return status.NewMachine(status.Booting, status.DaemonTransitions, func(c status.StatusChange) {
		logger.Info("daemon state changed", zap.String("from", string(c.From)), zap.String("to", string(c.To)))
	})
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := paths.EnsureDir(p.Instance); err != nil {
		return nil, err
	}
	logger.Info("acquiring instance lock", zap.String("instance", p.Instance))
	l, err := lock.Acquire(paths.Dir(p.Instance))
	if err != nil {
		return nil, err
	}
	logger.Info("instance lock acquired")
	return l, nil
}

// provideBackend opens the configured store. It takes the lock so the
// store is never opened by a daemon that does not own the instance.
func provideBackend(p Params, _ *lock.Lock, logger *zap.Logger) (store.Backend, error) {
	if p.Config.Backend == config.BackendPebble {
		dir := paths.PebbleDir(p.Instance)
		db, err := kv.Open(dir, store.SystemClock{})
		if err != nil {
			return nil, err
		}
		logger.Info("store initialized", zap.String("backend", config.BackendPebble), zap.String("path", dir))
		return db, nil
	}

	dbPath := paths.SQLitePath(p.Instance)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("from", result.From), zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("backend", config.BackendSQLite), zap.String("path", dbPath))
	return db, nil
}

func providePublisher(backend store.Backend, b *bus.Bus) *store.Publisher {
	return store.NewPublisher(backend, b)
}

func provideRoster(p Params, logger *zap.Logger) roster.Directory {
	rc := p.Config.Roster
	var src roster.Source
	switch {
	case rc.URL != "":
		src = roster.NewHTTPSource(rc.URL, rosterFetchTimeout)
	case rc.File != "":
		src = roster.NewFileSource(rc.File)
	default:
		logger.Warn("no roster configured, inbox will be empty")
		src = roster.Static{}
	}
	return roster.NewCached(src, rc.TTL.Duration, logger)
}

func provideIndex(pub *store.Publisher, dir roster.Directory, b *bus.Bus, logger *zap.Logger) *index.Index {
	return index.New(pub, dir, b, logger)
}

func provideSyncEngine(p Params, pub *store.Publisher, idx *index.Index, b *bus.Bus, logger *zap.Logger, m *metrics.Metrics) *sync.Engine {
	return sync.NewEngine(sync.StoreLoader{Store: pub, Inbox: idx}, b, logger, m, sync.Options{
		ResyncInterval: p.Config.Sync.ResyncInterval.Duration,
	})
}

func provideTracker(pub *store.Publisher, logger *zap.Logger, m *metrics.Metrics) *presence.Tracker {
	return presence.NewTracker(pub, logger, m)
}

func provideCounter(pub *store.Publisher, logger *zap.Logger, m *metrics.Metrics) *unread.Counter {
	return unread.NewCounter(pub, logger, m)
}

func provideChatService(
	p Params,
	pub *store.Publisher,
	counter *unread.Counter,
	tracker *presence.Tracker,
	idx *index.Index,
	engine *sync.Engine,
	dir roster.Directory,
	logger *zap.Logger,
	m *metrics.Metrics,
) *chat.Service {
	limits := chat.Limits{RPS: p.Config.Limits.SendsPerSecond, Burst: p.Config.Limits.Burst}
	return chat.NewService(pub, counter, tracker, idx, engine, dir, limits, logger, m)
}

func provideAPIService(p Params, c *chat.Service, engine *sync.Engine, machine *status.Machine, logger *zap.Logger) *api.Service {
	return api.NewService(c, engine, machine, api.Info{Instance: p.Instance, Backend: p.Config.Backend}, logger)
}

func provideGateway(c *chat.Service, m *metrics.Metrics, logger *zap.Logger) *gateway.Gateway {
	return gateway.New(c, m, logger)
}

type lifecycleParams struct {
	fx.In

	Params  Params
	Server  *Server
	Gateway *gateway.Gateway
	Lock    *lock.Lock
	Backend store.Backend
	Index   *index.Index
	Engine  *sync.Engine
	Tracker *presence.Tracker
	Machine *status.Machine
	Logger  *zap.Logger
}

func registerLifecycle(lc fx.Lifecycle, d lifecycleParams) {
	logger := d.Logger
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Index.Start(context.Background())
			d.Engine.Start(context.Background())

			// Start gRPC server in background.
			go func() {
				if err := d.Server.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
					_ = d.Machine.Transition(status.Error)
				}
			}()

			if gw := d.Params.Config.Gateway; gw.Enabled {
				if err := d.Gateway.Listen(gw.Listen); err != nil {
					_ = d.Machine.Transition(status.Error)
					return err
				}
				go func() {
					if err := d.Gateway.Serve(); err != nil {
						logger.Error("gateway error", zap.Error(err))
					}
				}()
			}

			if err := d.Machine.Transition(status.Ready); err != nil {
				return err
			}
			d.Server.SetServing(true)
			d.Gateway.SetReady(true)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			_ = d.Machine.Transition(status.Stopping)
			d.Server.SetServing(false)

			drainCtx, cancel := context.WithTimeout(ctx, streamDrainTimeout)
			defer cancel()
			if err := d.Gateway.Shutdown(drainCtx); err != nil {
				logger.Warn("gateway shutdown", zap.Error(err))
			}
			d.Engine.Stop()
			d.Server.Stop(drainCtx)
			// Dropped sessions write their auto-offline before the store closes.
			d.Tracker.Wait()
			d.Index.Stop()
			if err := d.Backend.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := d.Lock.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
