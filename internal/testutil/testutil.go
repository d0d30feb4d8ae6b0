// Package testutil provides testing utilities for roundtrip.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

// NewLogger returns a logger that records every entry, down to trace level.
func NewLogger(t *testing.T) (*logrus.Logger, *logtest.Hook) {
	t.Helper()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)
	t.Cleanup(hook.Reset)

	return logger, hook
}

// EntriesAt returns the recorded entries at level.
func EntriesAt(hook *logtest.Hook, level logrus.Level) []logrus.Entry {
	var entries []logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == level {
			entries = append(entries, *e)
		}
	}
	return entries
}

// TempModule writes a Go module named modulePath with the given files into
// a temporary directory and returns the directory.
func TempModule(t *testing.T, modulePath string, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	files["go.mod"] = "module " + modulePath + "\n\ngo 1.21\n"
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := writeFile(path, content); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	return dir
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// AccessorPackage is a small package with accessor pairs and constructors
// used by scanner and generator tests.
const AccessorPackage = `package shop

import "errors"

// Item is sold in the shop.
type Item struct {
	name  string
	price int64
	sale  bool
}

func NewItem(name string, price int64) *Item {
	return &Item{name: name, price: price}
}

func (i *Item) Name() string        { return i.name }
func (i *Item) SetName(name string) { i.name = name }
func (i *Item) Price() int64        { return i.price }
func (i *Item) SetPrice(p int64)    { i.price = p }
func (i *Item) IsSale() bool        { return i.sale }
func (i *Item) SetSale(s bool)      { i.sale = s }

// Cart holds items.
type Cart struct {
	items []*Item
	owner string
}

func NewCart(owner string) (*Cart, error) {
	if owner == "" {
		return nil, errors.New("owner required")
	}
	return &Cart{owner: owner}, nil
}

func (c *Cart) Items() []*Item       { return c.items }
func (c *Cart) SetItems(it []*Item)  { c.items = it }
func (c *Cart) GetOwner() string     { return c.owner }
func (c *Cart) SetOwner(o string)    { c.owner = o }

// Receipt has no setters.
type Receipt struct {
	Total int64
}

type hidden struct {
	v int
}

func (h *hidden) SetV(v int) { h.v = v }
func (h *hidden) V() int     { return h.v }
`
