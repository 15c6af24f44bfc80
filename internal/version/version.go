// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package version provides the build version.
package version

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

// Print writes the build version to w.
func Print(w io.Writer) error {
	s, err := String()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

// String returns the build version, including the VCS revision when
// it is recorded in the build info.
func String() (string, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", errors.New("no build info")
	}
	var revision, modified string
	for _, bs := range bi.Settings {
		switch bs.Key {
		case "vcs.revision":
			revision = bs.Value
		case "vcs.modified":
			modified = bs.Value
		}
	}
	switch {
	case revision == "":
		return bi.Main.Version, nil
	case modified == "true":
		return fmt.Sprintf("%s %s (modified)", bi.Main.Version, revision), nil
	default:
		return fmt.Sprintf("%s %s", bi.Main.Version, revision), nil
	}
}
