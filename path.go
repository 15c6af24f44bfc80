// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dylib

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Path describes the location of a dynamic library as a directory and
// a platform-neutral library name without OS-specific prefix or
// extension. An empty Dir leaves a bare filename, which the OS loader
// resolves according to its own search rules. Path holds no foreign
// resources and may be freely copied.
type Path struct {
	Dir  string
	Name string
}

// Filename returns the conventional filename for the library on the
// host platform: "{name}.dll" on windows, "lib{name}.dylib" on darwin
// and ios, and "lib{name}.so" elsewhere. Filename returns ErrEmptyName
// if the library name is empty.
func (p Path) Filename() (string, error) {
	if p.Name == "" {
		return "", ErrEmptyName
	}
	return libFilename(runtime.GOOS, p.Name), nil
}

// libFilename returns the conventional shared library filename for
// name on the given GOOS.
func libFilename(goos, name string) string {
	switch goos {
	case "windows":
		return name + ".dll"
	case "darwin", "ios":
		return "lib" + name + ".dylib"
	default:
		return "lib" + name + ".so"
	}
}

// Resolve returns the directory joined with the host platform's
// filename for the library. No check is made that the path exists;
// that is discovered only when the library is opened. Resolve returns
// ErrEmptyName if the library name is empty.
func (p Path) Resolve() (string, error) {
	name, err := p.Filename()
	if err != nil {
		return "", err
	}
	return filepath.Join(p.Dir, name), nil
}

// String returns the resolved path for diagnostic use. An unresolvable
// Path is rendered as the error text in angle brackets.
func (p Path) String() string {
	s, err := p.Resolve()
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return s
}

// sysString verifies that path is representable in the string form
// passed to the OS loader, which does not admit interior NUL bytes.
func sysString(path string) (string, error) {
	if strings.IndexByte(path, 0) >= 0 {
		return "", &ConversionError{Path: path, Target: sysTarget}
	}
	return path, nil
}
