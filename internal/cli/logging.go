package cli

import (
	"log/slog"

	"github.com/Davincible/kuznechik/pkg/config"
)

// LogLevel maps the configured ui.verbosity to a slog level. --verbose
// always selects debug output. An unreadable config falls back to the
// normal level; the command itself reports the config error.
func LogLevel(verbose bool) slog.Level {
	verbosity := ""
	if cm, err := config.NewConfigManager(); err == nil {
		verbosity = cm.GetConfig().UI.Verbosity
	}
	return levelFor(verbosity, verbose)
}

func levelFor(verbosity string, verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	switch verbosity {
	case "quiet":
		return slog.LevelError
	case "verbose":
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}
