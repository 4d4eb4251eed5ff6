package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/drawnet/drawnet/pkg/observability"
)

// logRenderHooks logs scene build and render events. Failures surface at
// warn level; successful events only show with --verbose.
type logRenderHooks struct {
	observability.NoopRenderHooks
	logger *log.Logger
}

func (h *logRenderHooks) OnBuildComplete(ctx context.Context, scene string, shapeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("scene build failed", "scene", scene, "err", err)
		return
	}
	h.logger.Debug("scene built", "scene", scene, "shapes", shapeCount, "duration", d.Round(time.Millisecond))
}

func (h *logRenderHooks) OnRenderComplete(ctx context.Context, scene, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "scene", scene, "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "scene", scene, "format", format, "bytes", size, "duration", d.Round(time.Millisecond))
}

// logCacheHooks logs cache activity at debug level.
type logCacheHooks struct {
	observability.NoopCacheHooks
	logger *log.Logger
}

func (h *logCacheHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.logger.Debug("cache hit", "key", keyType)
}

func (h *logCacheHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.logger.Debug("cache miss", "key", keyType)
}

func (h *logCacheHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "key", keyType, "bytes", size)
}
