// Package reason holds the absence reason catalog shared by the server and
// its clients.
package reason

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

var (
	ErrEmptyCatalog     = errors.New("reason catalog has no reasons")
	ErrDuplicateReason  = errors.New("reason catalog has a duplicate name")
	ErrUnknownNotListed = errors.New("reason catalog does not list its unknown reason")
)

type Reason struct {
	Name       string `yaml:"name" json:"name"`
	Respectful bool   `yaml:"respectful" json:"respectful"`
}

type catalogFile struct {
	Unknown string   `yaml:"unknown"`
	Reasons []Reason `yaml:"reasons"`
}

// Catalog is an ordered, read-only list of reasons.
type Catalog struct {
	reasons []Reason
	byName  map[string]Reason
	unknown string
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded reason catalog: %v", err))
	}
	return c
}

// Load reads a catalog from path, or returns the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reason catalog: %w", err)
	}
	return Parse(buf)
}

func Parse(buf []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return nil, fmt.Errorf("parse reason catalog: %w", err)
	}
	return New(f.Unknown, f.Reasons)
}

// New builds a catalog. unknown names the reason substituted for a missing one
// and must be part of reasons.
func New(unknown string, reasons []Reason) (*Catalog, error) {
	if len(reasons) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		reasons: make([]Reason, 0, len(reasons)),
		byName:  make(map[string]Reason, len(reasons)),
		unknown: strings.TrimSpace(unknown),
	}
	for _, r := range reasons {
		r.Name = strings.TrimSpace(r.Name)
		if _, dup := c.byName[r.Name]; dup || r.Name == "" {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateReason, r.Name)
		}
		c.byName[r.Name] = r
		c.reasons = append(c.reasons, r)
	}
	if _, ok := c.byName[c.unknown]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotListed, c.unknown)
	}
	return c, nil
}

// All returns the reasons in display order.
func (c *Catalog) All() []Reason {
	out := make([]Reason, len(c.reasons))
	copy(out, c.reasons)
	return out
}

// Lookup returns the catalog entry named name.
func (c *Catalog) Lookup(name string) (Reason, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Unknown is the reason recorded when an absence has none.
func (c *Catalog) Unknown() string {
	return c.unknown
}

// Resolve returns the reason to store for name and whether it is excused.
// An empty name becomes the unknown reason; names outside the catalog are
// kept as given and counted as unexcused.
func (c *Catalog) Resolve(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = c.unknown
	}
	r, ok := c.Lookup(name)
	if !ok {
		return name, false
	}
	return r.Name, r.Respectful
}

// Known reports whether name is listed in the catalog.
func (c *Catalog) Known(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}
