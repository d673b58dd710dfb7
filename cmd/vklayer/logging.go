package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/vulkan"
)

const logEnv = "VK_LAYER_GOGPU_LOG"

// parseLevel maps the value of VK_LAYER_GOGPU_LOG to a level. Unset or
// unknown values leave the layer silent.
func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

// configureLogging installs a text handler on stderr before the loader
// calls into the layer. layer.Default picks up vulkan.Logger on first use.
func configureLogging() {
	level, ok := parseLevel(os.Getenv(logEnv))
	if !ok {
		return
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	vulkan.SetLogger(slog.New(h).With(slog.String("layer", "VK_LAYER_GOGPU_sample")))
}
