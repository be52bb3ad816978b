// Package collect gathers raw financial statement figures interactively
// and carries them as a dataset tagged with its reporting unit.
package collect

import (
	_ "embed"
	"fmt"
	"sync"

	yaml "gopkg.in/yaml.v2"
)

//go:embed fields.yaml
var fieldsYAML []byte

// Field is a single figure collected from a statement. Absolute fields are
// entered as plain counts (share counts, per-share values) and are never
// unit-converted.
type Field struct {
	Key      string `yaml:"key"`
	Label    string `yaml:"label"`
	Absolute bool   `yaml:"absolute"`
}

// Section groups fields under a statement heading.
type Section struct {
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`
}

// Statement is one of the three financial statements.
type Statement struct {
	Title    string    `yaml:"title"`
	Sections []Section `yaml:"sections"`
}

type catalog struct {
	Statements []Statement `yaml:"statements"`
}

var (
	catalogOnce   sync.Once
	loadedCatalog catalog
	catalogErr    error
)

func loadCatalog() (catalog, error) {
	catalogOnce.Do(func() {
		catalogErr = yaml.Unmarshal(fieldsYAML, &loadedCatalog)
	})
	return loadedCatalog, catalogErr
}

// Statements returns the field catalog in collection order.
func Statements() ([]Statement, error) {
	c, err := loadCatalog()
	if err != nil {
		return nil, fmt.Errorf("load field catalog: %w", err)
	}
	return c.Statements, nil
}

// Fields returns every field in the catalog, flattened in collection order.
func Fields() ([]Field, error) {
	stmts, err := Statements()
	if err != nil {
		return nil, err
	}
	var out []Field
	for _, s := range stmts {
		for _, sec := range s.Sections {
			out = append(out, sec.Fields...)
		}
	}
	return out, nil
}

// AbsoluteFields returns the keys of fields entered as absolute numbers.
func AbsoluteFields() (map[string]bool, error) {
	fields, err := Fields()
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool)
	for _, f := range fields {
		if f.Absolute {
			out[f.Key] = true
		}
	}
	return out, nil
}
