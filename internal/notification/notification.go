// Package notification provides the navbar notification feed: the item
// model, a YAML fixture loader and the stores the feed is read from.
package notification

import (
	"context"
	"errors"
)

// Kind classifies a notification for display.
type Kind string

// Notification kinds.
const (
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindInfo, KindWarning, KindSuccess, KindError:
		return true
	}
	return false
}

// ErrNotFound is returned when a notification id is unknown.
var ErrNotFound = errors.New("notification not found")

// Item is one entry of the notification feed.
type Item struct {
	ID      string `yaml:"id" json:"id"`
	Message string `yaml:"message" json:"message"`
	Time    string `yaml:"time" json:"time"`
	Read    bool   `yaml:"read" json:"read"`
	Kind    Kind   `yaml:"type" json:"type"`
}

// Store is a source of notifications.
type Store interface {
	// List returns the feed, newest first.
	List(ctx context.Context) ([]Item, error)
	// MarkRead flags one item as read.
	MarkRead(ctx context.Context, id string) error
	// Replace swaps the whole feed, e.g. after the fixture changed. Items
	// whose id survives the swap stay read.
	Replace(ctx context.Context, items []Item) error
}

// CountUnread returns the number of items not yet read.
func CountUnread(items []Item) int {
	n := 0
	for _, it := range items {
		if !it.Read {
			n++
		}
	}
	return n
}

// Find returns the item with id.
func Find(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
