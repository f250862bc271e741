// SPDX-License-Identifier: MPL-2.0

package syntaxfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invowk/namekit/pkg/namesyntax"
)

const (
	// FormatProperties is a Java properties file holding one syntax.
	FormatProperties Format = "properties"
	// FormatCUE is a CUE file holding any number of syntaxes.
	FormatCUE Format = "cue"
	// FormatTOML is a TOML file holding any number of syntaxes.
	FormatTOML Format = "toml"
)

// Format identifies a syntax file format.
type Format string

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, error) {
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".properties":
		return FormatProperties, nil
	case ".cue":
		return FormatCUE, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// LoadFile reads every syntax defined in the file at path. A .properties
// file yields one syntax named after the file.
func LoadFile(path string, opts ...Option) (map[string]*namesyntax.Syntax, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read syntax file: %w", err)
	}

	opts = append([]Option{WithFilename(path)}, opts...)
	switch format {
	case FormatCUE:
		return ParseCUE(data, opts...)
	case FormatTOML:
		return ParseTOML(data, opts...)
	default:
		name := propertiesName(path)
		if !namePattern.MatchString(name) {
			return nil, &DefinitionError{File: path, Syntax: name, Err: ErrInvalidSyntaxName}
		}
		syn, err := ParseProperties(data, opts...)
		if err != nil {
			return nil, err
		}
		return map[string]*namesyntax.Syntax{name: syn}, nil
	}
}

// propertiesName is the syntax name of a .properties file: its base name
// without the extension.
func propertiesName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
