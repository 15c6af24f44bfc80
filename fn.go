// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dylib

// Func is a typed handle to a function exported by an open library.
// A Func holds a reference to its library for its entire lifetime, so
// the library cannot be collected while the handle is reachable. An
// explicit [Lib.Close] is not prevented; see [Func.Fn].
type Func[F any] struct {
	lib *Lib
	fn  F
}

// Sym resolves name in l and returns a handle that calls the symbol as
// a function of type F. F must be a Go function type; Sym panics if it
// is not.
//
// The signature F is trusted: nothing in the loaded binary can be
// checked against it, and calling a function through a handle whose
// signature does not match the foreign function's true arguments,
// results and calling convention is undefined behaviour, up to and
// including stack corruption. The set of supported parameter and
// result types is that of purego.RegisterFunc.
func Sym[F any](l *Lib, name string) (*Func[F], error) {
	addr, err := l.Addr(name)
	if err != nil {
		return nil, err
	}
	f := Func[F]{lib: l}
	registerFunc(&f.fn, addr)
	return &f, nil
}

// Fn returns the typed function. The returned value remains valid only
// while the owning library is open; Fn panics if the library has been
// closed.
func (f *Func[F]) Fn() F {
	if f.lib.handle == 0 {
		panic("dylib: use of function from closed library")
	}
	return f.fn
}

// Lib returns the library the function was resolved from.
func (f *Func[F]) Lib() *Lib { return f.lib }
