package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/drawnet/drawnet/internal/server"
	"github.com/drawnet/drawnet/pkg/cache"
	"github.com/drawnet/drawnet/pkg/observability"
)

// Cache backends selectable via --cache.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendOff   = "off"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr          string
	backend       string
	ttlStr        string
	redisAddr     string
	redisPassword string
	redisDB       int
	namespace     string
}

// serveCommand creates the serve command for the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      ":8080",
		backend:   cacheBackendFile,
		ttlStr:    "1h",
		redisAddr: "localhost:6379",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered gallery artifacts over HTTP",
		Long: `Serve the scene gallery over HTTP.

GET /v1/gallery lists the available scenes; GET /v1/gallery/{scene}.{format}
returns a rendered artifact. The width and detailed query parameters select
render variants.

Rendered artifacts are cached in the configured backend. When Redis is
unreachable at startup, serve falls back to the file cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyServerConfig(&opts, cfg.Server, cmd.Flags().Changed)
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.backend, "cache", opts.backend, "cache backend: file (default), redis, off")
	cmd.Flags().StringVar(&opts.ttlStr, "cache-ttl", opts.ttlStr, "artifact cache TTL (Go duration)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", opts.redisAddr, "redis address")
	cmd.Flags().StringVar(&opts.redisPassword, "redis-password", "", "redis password")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis database number")
	cmd.Flags().StringVar(&opts.namespace, "namespace", "", "cache key namespace")

	return cmd
}

// applyServerConfig fills unset serve flags from the config file.
func applyServerConfig(opts *serveOpts, cfg ServerConfig, changed func(string) bool) {
	if !changed("addr") && cfg.Addr != "" {
		opts.addr = cfg.Addr
	}
	if !changed("cache") && cfg.Cache != "" {
		opts.backend = cfg.Cache
	}
	if !changed("cache-ttl") && cfg.CacheTTL != "" {
		opts.ttlStr = cfg.CacheTTL
	}
	if !changed("redis-addr") && cfg.RedisAddr != "" {
		opts.redisAddr = cfg.RedisAddr
	}
	if !changed("redis-password") && cfg.RedisPassword != "" {
		opts.redisPassword = cfg.RedisPassword
	}
	if !changed("redis-db") && cfg.RedisDB != 0 {
		opts.redisDB = cfg.RedisDB
	}
	if !changed("namespace") && cfg.Namespace != "" {
		opts.namespace = cfg.Namespace
	}
}

// runServe wires the cache, keyer, and hooks, then runs the server until
// the context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	ttl, err := time.ParseDuration(opts.ttlStr)
	if err != nil {
		return fmt.Errorf("invalid cache TTL %q: %w", opts.ttlStr, err)
	}

	store, err := c.buildCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	keyer := cache.NewDefaultKeyer()
	if opts.namespace != "" {
		keyer = cache.NewScopedKeyer(keyer, opts.namespace)
	}

	observability.SetRenderHooks(&logRenderHooks{logger: c.Logger})
	observability.SetCacheHooks(&logCacheHooks{logger: c.Logger})

	srv := server.New(server.Config{
		Addr:  opts.addr,
		Cache: store,
		Keyer: keyer,
		TTL:   ttl,
		Log:   c.Logger,
	})

	printInfo("Serving gallery on %s", StyleHighlight.Render(opts.addr))
	return srv.ListenAndServe(ctx)
}

// buildCache constructs the cache backend for the server. An unreachable
// Redis degrades to the file cache with a warning.
func (c *CLI) buildCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.backend {
	case cacheBackendOff:
		return cache.NewNullCache(), nil

	case cacheBackendRedis:
		rc := cache.NewRedisCache(opts.redisAddr, opts.redisPassword, opts.redisDB)
		err := cache.RetryWithBackoff(ctx, func() error {
			if err := rc.Ping(ctx); err != nil {
				return cache.Retryable(err)
			}
			return nil
		})
		if err != nil {
			rc.Close()
			c.Logger.Warn("redis unreachable, falling back to file cache", "addr", opts.redisAddr, "err", err)
			return c.fileCache()
		}
		c.Logger.Debug("using redis cache", "addr", opts.redisAddr)
		return rc, nil

	case cacheBackendFile:
		return c.fileCache()

	default:
		return nil, fmt.Errorf("invalid cache backend: %s (must be 'file', 'redis', or 'off')", opts.backend)
	}
}

func (c *CLI) fileCache() (cache.Cache, error) {
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
