// SPDX-License-Identifier: MPL-2.0

package syntaxfile

import (
	"bytes"
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/invowk/namekit/pkg/cueutil"
	"github.com/invowk/namekit/pkg/namesyntax"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
)

// syntaxKeyPrefix is shared by every recognized property key.
const syntaxKeyPrefix = "jndi.syntax."

//go:embed syntax_schema.cue
var syntaxSchema []byte

// ParseProperties reads a single syntax from a Java properties document.
// Keys outside the jndi.syntax namespace are ignored and ${...} references
// are kept verbatim.
func ParseProperties(data []byte, opts ...Option) (*namesyntax.Syntax, error) {
	o := newOptions(opts)
	if err := cueutil.CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	loader := properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.filename, err)
	}

	props := make(map[string]string)
	for key, value := range p.Map() {
		if strings.HasPrefix(key, syntaxKeyPrefix) {
			props[key] = value
		}
	}

	syn, err := namesyntax.New(props)
	if err != nil {
		return nil, &DefinitionError{File: o.filename, Syntax: propertiesName(o.filename), Err: err}
	}
	return syn, nil
}

// ParseCUE reads the syntaxes of a CUE document shaped like
// `syntaxes: [name]: {...}`.
func ParseCUE(data []byte, opts ...Option) (map[string]*namesyntax.Syntax, error) {
	o := newOptions(opts)
	res, err := cueutil.Decode[File](syntaxSchema, data, "#File",
		cueutil.WithFilename(o.filename),
		cueutil.WithMaxFileSize(o.maxFileSize),
	)
	if err != nil {
		return nil, err
	}
	return res.Value.build(o.filename)
}

// ParseTOML reads the syntaxes of a TOML document made of
// [syntaxes.<name>] tables. Unknown keys are rejected.
func ParseTOML(data []byte, opts ...Option) (map[string]*namesyntax.Syntax, error) {
	o := newOptions(opts)
	if err := cueutil.CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	var f File
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%s: %w", o.filename, err)
	}
	return f.build(o.filename)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
