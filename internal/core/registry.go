package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// LoadOptions control how an input file is parsed.
type LoadOptions struct {
	FileType  string // registered format name: "csv" or "excel"
	Header    bool   // first row holds column names (csv only)
	Delimiter string // field separator (csv only)
}

// WriteOptions control how a table is serialized.
type WriteOptions struct {
	FileType  string
	Delimiter string
}

// LoadFunc parses the file at path into a table.
type LoadFunc func(ctx context.Context, path string, opts LoadOptions) (*Table, error)

// WriteFunc serializes a table to path, always with a header row.
type WriteFunc func(ctx context.Context, t *Table, path string, opts WriteOptions) error

// Format pairs a loader and writer for one file family.
type Format struct {
	Name  string // CLI value: "csv"
	Label string // Display name used in messages: "CSV"
	Load  LoadFunc
	Write WriteFunc
}

var (
	formats   = make(map[string]Format)
	formatsMu sync.RWMutex
)

// RegisterFormat adds a format to the registry.
// Panics if a format with the same name is already registered.
func RegisterFormat(f Format) {
	formatsMu.Lock()
	defer formatsMu.Unlock()

	if _, exists := formats[f.Name]; exists {
		panic(fmt.Sprintf("format already registered: %s", f.Name))
	}
	if f.Load == nil || f.Write == nil {
		panic(fmt.Sprintf("format %s must define Load and Write", f.Name))
	}

	formats[f.Name] = f
}

// LookupFormat returns a format by name.
// Returns false if not found.
func LookupFormat(name string) (Format, bool) {
	formatsMu.RLock()
	defer formatsMu.RUnlock()

	f, ok := formats[name]
	return f, ok
}

// FormatNames returns the registered format names in sorted order.
func FormatNames() []string {
	formatsMu.RLock()
	defer formatsMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
