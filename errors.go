// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dylib

import (
	"errors"
	"fmt"
)

// ErrEmptyName is the error returned for a Path with an empty library
// name.
var ErrEmptyName = errors.New("empty library name")

// ConversionError is the error returned when a resolved path cannot be
// represented in the string form required for the OS loader call.
type ConversionError struct {
	Path   string // offending path
	Target string // required representation
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert path %q to %s", e.Path, e.Target)
}

// LoadError is the error returned when the OS loader rejects a load.
type LoadError struct {
	Path string // resolved path passed to the loader
	Msg  string // loader diagnostic, verbatim

	err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Msg)
}

// Unwrap returns the underlying loader error.
func (e *LoadError) Unwrap() error { return e.err }

// SymbolError is the error returned when a library does not export a
// requested symbol.
type SymbolError struct {
	Symbol  string // requested symbol name
	Library string // resolved path of the library
	Msg     string // loader diagnostic, verbatim

	err error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("could not find %s in %s: %s", e.Symbol, e.Library, e.Msg)
}

// Unwrap returns the underlying loader error.
func (e *SymbolError) Unwrap() error { return e.err }
