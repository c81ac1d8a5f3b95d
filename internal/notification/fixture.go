package notification

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/notifications.yaml
var defaultFixture []byte

type fixtureFile struct {
	Notifications []Item `yaml:"notifications"`
}

// DefaultFixture returns the built-in feed.
func DefaultFixture() ([]Item, error) {
	items, err := ParseFixture(defaultFixture)
	if err != nil {
		return nil, fmt.Errorf("built-in notification fixture: %w", err)
	}
	return items, nil
}

// LoadFixture reads a YAML feed from path.
func LoadFixture(path string) ([]Item, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read notification fixture: %w", err)
	}
	items, err := ParseFixture(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ParseFixture decodes a YAML feed. Items without an id get a generated
// one; items without a type are "info".
func ParseFixture(data []byte) ([]Item, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse notification fixture: %w", err)
	}

	seen := make(map[string]struct{}, len(f.Notifications))
	items := make([]Item, 0, len(f.Notifications))
	for i, it := range f.Notifications {
		it.ID = strings.TrimSpace(it.ID)
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("notification %d: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = struct{}{}

		if it.Kind == "" {
			it.Kind = KindInfo
		}
		if !it.Kind.Valid() {
			return nil, fmt.Errorf("notification %q: unknown type %q", it.ID, it.Kind)
		}
		items = append(items, it)
	}
	return items, nil
}
