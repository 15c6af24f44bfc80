// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !darwin && !freebsd && !linux && !windows

package dylib

import "errors"

const sysTarget = "C string"

var errNotImplemented = errors.New("not implemented")

func openLibrary(_ string) (uintptr, error) {
	return 0, errNotImplemented
}

func symbolAddr(_ uintptr, _ string) (uintptr, error) {
	return 0, errNotImplemented
}

func closeLibrary(_ uintptr) error {
	return errNotImplemented
}

func registerFunc(_ any, _ uintptr) {
	panic(errNotImplemented)
}
