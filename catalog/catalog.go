// Package catalog loads error definitions from YAML documents.
//
// A catalog lists error types by name. Each entry is either compiled on its
// own or extends another entry of the same catalog:
//
//	errors:
//	  - name: EntityNotExistsError
//	    httpCode: 404
//	    defaults: {message: Entity not exists}
//	  - name: UserNotExistsError
//	    extends: EntityNotExistsError
//	    schema:
//	      properties:
//	        userId: {type: integer}
//	    defaults: {code: 2000}
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	openapierror "github.com/QuisEgoSum/openapi-error"
	"github.com/QuisEgoSum/openapi-error/resolver"
	"gopkg.in/yaml.v3"
)

type (
	// Catalog is a set of compiled definitions loaded from a document.
	Catalog struct {
		defs   []*openapierror.Definition
		byName map[string]*openapierror.Definition
	}

	document struct {
		Errors []yaml.Node `yaml:"errors"`
	}

	entry struct {
		Name     string         `yaml:"name"`
		HTTPCode *int           `yaml:"httpCode"`
		Extends  string         `yaml:"extends"`
		Schema   map[string]any `yaml:"schema"`
		Defaults map[string]any `yaml:"defaults"`

		line int
	}

	builder struct {
		entries  map[string]*entry
		built    map[string]*openapierror.Definition
		visiting map[string]bool
		opts     []openapierror.Option
	}
)

// Load reads a catalog document from r.
// The options are applied to every root entry and inherited by extensions.
func Load(r io.Reader, opts ...openapierror.Option) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrInvalidCatalog.Wrap(err, causeMessage("failed to read catalog", err))
	}
	return Parse(data, opts...)
}

// LoadFile reads a catalog document from the file at path.
func LoadFile(path string, opts ...openapierror.Option) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrInvalidCatalog.Wrap(err, causeMessage("failed to read catalog", err))
	}
	return Parse(data, opts...)
}

// Parse builds a catalog from a YAML document.
func Parse(data []byte, opts ...openapierror.Option) (*Catalog, error) {
	entries, err := decodeEntries(data)
	if err != nil {
		return nil, err
	}

	b := &builder{
		entries:  make(map[string]*entry, len(entries)),
		built:    make(map[string]*openapierror.Definition, len(entries)),
		visiting: make(map[string]bool),
		opts:     opts,
	}
	for _, e := range entries {
		b.entries[e.Name] = e
	}

	c := &Catalog{
		defs:   make([]*openapierror.Definition, 0, len(entries)),
		byName: b.built,
	}
	for _, e := range entries {
		def, err := b.build(e)
		if err != nil {
			return nil, err
		}
		c.defs = append(c.defs, def)
	}
	return c, nil
}

// Definitions returns the definitions in document order.
func (c *Catalog) Definitions() []*openapierror.Definition {
	return slices.Clone(c.defs)
}

// Lookup returns the definition with the given name.
func (c *Catalog) Lookup(name string) (*openapierror.Definition, bool) {
	def, ok := c.byName[name]
	return def, ok
}

// Resolver returns a resolver over the catalog's definitions.
func (c *Catalog) Resolver() *resolver.StrictResolver {
	return resolver.New(c.defs...)
}

func decodeEntries(data []byte) ([]*entry, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrInvalidCatalog.Wrap(err, causeMessage("invalid error catalog", err))
	}

	entries := make([]*entry, 0, len(doc.Errors))
	seen := make(map[string]bool, len(doc.Errors))
	for i := range doc.Errors {
		node := &doc.Errors[i]

		e := &entry{line: node.Line}
		if err := node.Decode(e); err != nil {
			vals := causeMessage("invalid catalog entry", err)
			vals["line"] = node.Line
			return nil, ErrInvalidCatalog.Wrap(err, vals)
		}
		if e.Name == "" {
			return nil, ErrInvalidCatalog.New(openapierror.Values{
				"message": "entry has no name",
				"line":    e.line,
			})
		}
		if seen[e.Name] {
			return nil, ErrInvalidCatalog.New(openapierror.Values{
				"message": fmt.Sprintf("duplicate entry %s", e.Name),
				"name":    e.Name,
				"line":    e.line,
			})
		}
		seen[e.Name] = true
		entries = append(entries, e)
	}
	return entries, nil
}

func (b *builder) build(e *entry) (*openapierror.Definition, error) {
	if def, ok := b.built[e.Name]; ok {
		return def, nil
	}
	if b.visiting[e.Name] {
		return nil, ErrCyclicExtends.New(openapierror.Values{
			"message": fmt.Sprintf("extends chain through %s is cyclic", e.Name),
			"name":    e.Name,
			"line":    e.line,
		})
	}
	b.visiting[e.Name] = true
	defer delete(b.visiting, e.Name)

	schema := openapierror.Schema{}
	for k, v := range e.Schema {
		schema[k] = v
	}
	schema["title"] = e.Name
	if e.HTTPCode != nil {
		schema["httpCode"] = *e.HTTPCode
	}

	var def *openapierror.Definition
	if e.Extends == "" {
		def = openapierror.Compile(schema, openapierror.Values(e.Defaults), b.opts...)
	} else {
		parentEntry, ok := b.entries[e.Extends]
		if !ok {
			return nil, ErrUnknownParent.New(openapierror.Values{
				"message": fmt.Sprintf("%s extends unknown error %s", e.Name, e.Extends),
				"name":    e.Name,
				"parent":  e.Extends,
				"line":    e.line,
			})
		}
		parent, err := b.build(parentEntry)
		if err != nil {
			return nil, err
		}
		def = parent.Extend(schema, openapierror.Values(e.Defaults))
	}

	b.built[e.Name] = def
	return def, nil
}

func causeMessage(prefix string, err error) openapierror.Values {
	return openapierror.Values{"message": fmt.Sprintf("%s: %v", prefix, err)}
}
