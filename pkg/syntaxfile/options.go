// SPDX-License-Identifier: MPL-2.0

package syntaxfile

import (
	"github.com/invowk/namekit/pkg/cueutil"
)

type (
	options struct {
		maxFileSize int64
		filename    string
	}

	// Option configures the Parse functions and LoadFile.
	Option func(*options)
)

func newOptions(opts []Option) options {
	o := options{maxFileSize: cueutil.DefaultMaxFileSize, filename: "<input>"}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxFileSize overrides the 5 MiB default size limit.
func WithMaxFileSize(size int64) Option {
	return func(o *options) { o.maxFileSize = size }
}

// WithFilename names the input in error messages. For .properties input it
// also determines the syntax name.
func WithFilename(name string) Option {
	return func(o *options) {
		if name != "" {
			o.filename = name
		}
	}
}
