// Package output provides formatters for displaying organize reports
// in various formats (pretty, plain, json, tsv).
//
// The package uses a registry pattern to allow registration of multiple
// formatter implementations that can be selected at runtime.
//
// Basic usage:
//
//	formatter, err := output.Get("pretty")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := formatter.Format(&buf, report); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(buf.String())
package output

import (
	"bytes"
	"fmt"
	"sort"
	"sync"

	"github.com/jamesainslie/organizer/pkg/organizer/types"
)

// Formatter renders an organize report into a buffer.
type Formatter interface {
	Format(w *bytes.Buffer, r *types.Report) error
}

// FormatterFunc constructs a formatter instance.
type FormatterFunc func() Formatter

var (
	registryMu sync.RWMutex
	registry   = make(map[string]FormatterFunc)
)

// Register adds a formatter constructor under the given name.
// Registration typically happens in init functions.
func Register(name string, fn FormatterFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Get returns a new formatter for the given name, or an error naming
// the available formats when the name is unknown.
func Get(name string) (Formatter, error) {
	registryMu.RLock()
	fn, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (available: %v)", name, Names())
	}
	return fn(), nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
