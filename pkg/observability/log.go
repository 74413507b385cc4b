package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports pipeline and cache events as debug log lines.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that write to logger.
func NewLogHooks(logger *log.Logger) *LogHooks { return &LogHooks{logger: logger} }

func (h *LogHooks) OnParseStart(ctx context.Context) { h.logger.Debug("parse started") }

func (h *LogHooks) OnParseComplete(ctx context.Context, positions int, d time.Duration, err error) {
	h.done("parse", d, err, "positions", positions)
}

func (h *LogHooks) OnLayoutStart(ctx context.Context, positions int) {
	h.logger.Debug("layout started", "positions", positions)
}

func (h *LogHooks) OnLayoutComplete(ctx context.Context, bubbles int, d time.Duration, err error) {
	h.done("layout", d, err, "bubbles", bubbles)
}

func (h *LogHooks) OnRenderStart(ctx context.Context, format string) {
	h.logger.Debug("render started", "format", format)
}

func (h *LogHooks) OnRenderComplete(ctx context.Context, format string, size int, d time.Duration, err error) {
	h.done("render", d, err, "format", format, "bytes", size)
}

func (h *LogHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) done(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "took", d.Round(time.Microsecond))
	if err != nil {
		h.logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" done", kv...)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
)
