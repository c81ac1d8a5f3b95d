// Package config provides configuration management for the Guichet CLI.
package config

import "time"

// ServerConfig holds configuration for the dashboard server.
type ServerConfig struct {
	Port          int    `koanf:"port" validate:"min=0,max=65535"`
	SessionSecret string `koanf:"session_secret" validate:"required"`
	Watch         bool   `koanf:"watch"`
	Dev           bool   `koanf:"dev"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// ThemeConfig holds the theme applied before a visitor picks one.
type ThemeConfig struct {
	Default string `koanf:"default"`
}

// NavbarConfig tunes the navbar.
type NavbarConfig struct {
	UnreadCeiling     int           `koanf:"unread_ceiling" validate:"min=1"`
	GreetingHideDelay time.Duration `koanf:"greeting_hide_delay"`
}

// SidebarConfig tunes the sidebar.
type SidebarConfig struct {
	AccentColor string `koanf:"accent_color" validate:"omitempty,hexcolor"`
}

// NotificationsConfig selects where the notification feed lives.
type NotificationsConfig struct {
	// Fixture is a YAML feed; empty uses the built-in one.
	Fixture    string `koanf:"fixture"`
	Store      string `koanf:"store" validate:"oneof=memory sqlite"`
	SQLitePath string `koanf:"sqlite_path"`
	PageSize   int    `koanf:"page_size" validate:"min=1"`
}

// ProfileConfig points at the profile lookup endpoint. An empty endpoint
// skips lookups.
type ProfileConfig struct {
	Endpoint string        `koanf:"endpoint" validate:"omitempty,url"`
	Timeout  time.Duration `koanf:"timeout"`
}

// AuthConfig holds the access token settings.
type AuthConfig struct {
	// HMACSecret enables signature checks; empty only decodes tokens.
	HMACSecret string `koanf:"hmac_secret"`
}

// Config holds all CLI configuration options.
type Config struct {
	Server        ServerConfig        `koanf:"server"`
	Log           LogConfig           `koanf:"log"`
	Theme         ThemeConfig         `koanf:"theme"`
	Navbar        NavbarConfig        `koanf:"navbar"`
	Sidebar       SidebarConfig       `koanf:"sidebar"`
	Notifications NotificationsConfig `koanf:"notifications"`
	Profile       ProfileConfig       `koanf:"profile"`
	Auth          AuthConfig          `koanf:"auth"`
	OutputFormat  string              `koanf:"output" validate:"omitempty,oneof=auto text markdown md json"`
}

// Notification store kinds.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Default configuration values.
const (
	DefaultPort              = 5173
	DefaultSessionSecret     = "guichet-dev-secret-change-in-production" //nolint:gosec // development default
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultTheme             = "light"
	DefaultUnreadCeiling     = 9
	DefaultGreetingHideDelay = 4 * time.Second
	DefaultAccentColor       = "#3b82f6"
	DefaultSQLitePath        = ".guichet/notifications.db"
	DefaultPageSize          = 5
	DefaultProfileTimeout    = 5 * time.Second
	DefaultOutput            = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// defaults returns the flattened default keys.
func defaults() map[string]any {
	return map[string]any{
		"server.port":                DefaultPort,
		"server.session_secret":      DefaultSessionSecret,
		"server.watch":               true,
		"server.dev":                 false,
		"log.level":                  DefaultLogLevel,
		"log.format":                 DefaultLogFormat,
		"theme.default":              DefaultTheme,
		"navbar.unread_ceiling":      DefaultUnreadCeiling,
		"navbar.greeting_hide_delay": DefaultGreetingHideDelay.String(),
		"sidebar.accent_color":       DefaultAccentColor,
		"notifications.store":        StoreMemory,
		"notifications.sqlite_path":  DefaultSQLitePath,
		"notifications.page_size":    DefaultPageSize,
		"profile.timeout":            DefaultProfileTimeout.String(),
		"output":                     DefaultOutput,
	}
}
