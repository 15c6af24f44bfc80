// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dylib provides loading of dynamic libraries and typed access
// to their exported functions.
//
// Loading a dynamic library maps foreign code into the process and
// runs the library's initialization routines. This is inherently
// unsafe: the package can report failures from the OS loader, but it
// cannot verify anything about the code it loads or the signatures of
// the symbols it resolves. Callers accept that risk when they call
// [Open] or [Sym].
package dylib

import "fmt"

// Lib is an open handle to a dynamic library. The zero Lib is not
// usable; obtain a Lib from [Open].
//
// The OS loader's behaviour for concurrent first loads of the same
// library is platform-dependent and is not arbitrated here; callers
// needing that guarantee must serialize their own loads.
type Lib struct {
	handle uintptr
	path   Path
	name   string // resolved path, retained for diagnostics
}

// Open loads the dynamic library described by p, resolving the
// OS-specific path with [Path.Resolve]. A failure from the OS loader
// is returned as a *LoadError carrying the loader's diagnostic; an
// unresolvable descriptor is returned as ErrEmptyName or a
// *ConversionError before any OS interaction.
//
// Opening a library executes arbitrary initialization code from the
// loaded binary in-process. This cannot be masked or intercepted.
func Open(p Path) (*Lib, error) {
	name, err := p.Resolve()
	if err != nil {
		return nil, err
	}
	name, err = sysString(name)
	if err != nil {
		return nil, err
	}
	h, err := openLibrary(name)
	if err != nil {
		return nil, &LoadError{Path: name, Msg: err.Error(), err: err}
	}
	return &Lib{handle: h, path: p, name: name}, nil
}

// Name returns the resolved path the library was loaded from.
func (l *Lib) Name() string { return l.name }

// Addr returns the address of the named exported symbol. The name is
// looked up exactly as given. If the library does not export the
// symbol, Addr returns a *SymbolError naming the symbol and the
// library's resolved path.
func (l *Lib) Addr(name string) (uintptr, error) {
	addr, err := symbolAddr(l.handle, name)
	if err != nil {
		return 0, &SymbolError{Symbol: name, Library: l.name, Msg: err.Error(), err: err}
	}
	return addr, nil
}

// Close closes the receiver, asking the OS loader to unmap the
// library. Symbols and functions obtained from the library must not be
// used after Close has been called. Close of a nil or already closed
// Lib is a no-op.
func (l *Lib) Close() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	err := closeLibrary(l.handle)
	l.handle = 0
	if err != nil {
		return fmt.Errorf("error closing %s: %w", l.name, err)
	}
	return nil
}
