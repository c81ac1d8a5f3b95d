package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/guichet-labs/guichet/internal/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator. Field names follow the
// koanf tags so errors name the configuration key.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// fieldErrors turns validator failures into one error per key.
func fieldErrors(err error) []error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []error{err}
	}
	errs := make([]error, 0, len(ves))
	for _, fe := range ves {
		// Namespace starts with the root struct name.
		_, key, _ := strings.Cut(fe.Namespace(), ".")
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		errs = append(errs, fmt.Errorf("%s failed validation for rule '%s' (got %v)", key, rule, fe.Value()))
	}
	return errs
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := validatorInstance().Struct(c); err != nil {
		errs = append(errs, fieldErrors(err)...)
	}
	if _, ok := theme.Parse(c.Theme.Default); !ok {
		errs = append(errs, fmt.Errorf("theme.default %q must be light or dark", c.Theme.Default))
	}
	if c.Navbar.GreetingHideDelay < 0 {
		errs = append(errs, errors.New("navbar.greeting_hide_delay must not be negative"))
	}
	if c.Notifications.Store == StoreSQLite && c.Notifications.SQLitePath == "" {
		errs = append(errs, errors.New("notifications.sqlite_path is required for the sqlite store"))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// IsDefaultSecret reports whether the session secret was left at its
// development default.
func (c *Config) IsDefaultSecret() bool {
	return c.Server.SessionSecret == DefaultSessionSecret
}
