package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store logger in context.
type loggerKey struct{}

// EnvPrefix prefixes every environment override.
const EnvPrefix = "GUICHET_"

// configNames are the file names searched in the working directory.
var configNames = []string{"guichet.yaml", "guichet.yml"}

// sections are the top-level keys holding nested settings.
var sections = map[string]bool{
	"server":        true,
	"log":           true,
	"theme":         true,
	"navbar":        true,
	"sidebar":       true,
	"notifications": true,
	"profile":       true,
	"auth":          true,
}

// flagKeys maps CLI flags to the config keys they override.
var flagKeys = map[string]string{
	"port":           "server.port",
	"watch":          "server.watch",
	"dev":            "server.dev",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"fixture":        "notifications.fixture",
	"store":          "notifications.store",
	"sqlite-path":    "notifications.sqlite_path",
	"profile-url":    "profile.endpoint",
	"token-secret":   "auth.hmac_secret",
	"output":         "output",
	"unread-ceiling": "navbar.unread_ceiling",
}

// Loader loads configuration from file, environment variables and flags.
type Loader struct {
	k        *koanf.Koanf
	fileUsed string
}

// NewLoader returns a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// findConfigFile finds the config file to use.
// Priority: explicit path > guichet.yaml > guichet.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range configNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envKey maps GUICHET_SERVER_SESSION_SECRET to server.session_secret.
// A double underscore always separates levels.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if strings.Contains(key, "__") {
		return strings.ReplaceAll(key, "__", ".")
	}
	if section, rest, ok := strings.Cut(key, "_"); ok && sections[section] {
		return section + "." + rest
	}
	return key
}

// Load loads configuration. Precedence (highest to lowest):
// flags > env vars > config file > defaults
func (l *Loader) Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	l.k = koanf.New(".")

	// 1. Load defaults
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load config file
	l.fileUsed = findConfigFile(cfgFile)
	if l.fileUsed != "" {
		if err := l.k.Load(file.Provider(l.fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", l.fileUsed, err)
		}
	}

	// 3. Load environment variables (GUICHET_ prefix)
	if err := l.k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority)
	if flags != nil {
		if err := l.k.Load(posflag.ProviderWithFlag(flags, ".", l.k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := l.k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Resolve paths relative to the config file
	if l.fileUsed != "" {
		base := filepath.Dir(l.fileUsed)
		cfg.Notifications.Fixture = resolvePathRelativeTo(cfg.Notifications.Fixture, base)
		cfg.Notifications.SQLitePath = resolvePathRelativeTo(cfg.Notifications.SQLitePath, base)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FileUsed returns the path to the config file loaded last, if any.
func (l *Loader) FileUsed() string {
	return l.fileUsed
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
// Returns the path unchanged if it's empty or already absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// LoadConfig loads configuration with a fresh Loader.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	return NewLoader().Load(cfgFile, flags)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	// Return discard logger as safe fallback
	return slog.New(slog.DiscardHandler)
}

// configKey is used to store config in context.
type configKey struct{}

// WithConfig returns a copy of ctx carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from the command context. Without
// one it loads the defaults and the environment.
func FromContext(ctx context.Context) (*Config, error) {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c, nil
	}
	return LoadConfig("", nil)
}
