// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dylib

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var libFilenameTests = []struct {
	goos string
	name string
	want string
}{
	{goos: "windows", name: "calculator", want: "calculator.dll"},
	{goos: "darwin", name: "calculator", want: "libcalculator.dylib"},
	{goos: "ios", name: "calculator", want: "libcalculator.dylib"},
	{goos: "linux", name: "calculator", want: "libcalculator.so"},
	{goos: "freebsd", name: "calculator", want: "libcalculator.so"},
	{goos: "openbsd", name: "calculator", want: "libcalculator.so"},
	{goos: "windows", name: "x", want: "x.dll"},
	{goos: "linux", name: "x", want: "libx.so"},
}

func TestLibFilename(t *testing.T) {
	for _, test := range libFilenameTests {
		got := libFilename(test.goos, test.name)
		if got != test.want {
			t.Errorf("unexpected filename for %s on %s: got:%q want:%q",
				test.name, test.goos, got, test.want)
		}
		if again := libFilename(test.goos, test.name); again != got {
			t.Errorf("filename for %s on %s is not stable: got:%q then:%q",
				test.name, test.goos, got, again)
		}
	}
}

func TestFilenameEmpty(t *testing.T) {
	_, err := Path{Name: ""}.Filename()
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("unexpected error from Filename with empty name: got:%v want:%v",
			err, ErrEmptyName)
	}
	_, err = Path{Dir: "testdir", Name: ""}.Resolve()
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("unexpected error from Resolve with empty name: got:%v want:%v",
			err, ErrEmptyName)
	}
}

func TestResolve(t *testing.T) {
	p := Path{Dir: "testdir", Name: "calculator"}
	name, err := p.Filename()
	if err != nil {
		t.Fatalf("unexpected error from Filename: %v", err)
	}
	got, err := p.Resolve()
	if err != nil {
		t.Fatalf("unexpected error from Resolve: %v", err)
	}
	want := filepath.Join("testdir", name)
	if got != want {
		t.Errorf("unexpected resolved path: got:%q want:%q", got, want)
	}

	// An empty directory leaves a bare filename for the loader's own
	// search rules.
	got, err = Path{Name: "calculator"}.Resolve()
	if err != nil {
		t.Fatalf("unexpected error from Resolve: %v", err)
	}
	if got != name {
		t.Errorf("unexpected resolved path with empty dir: got:%q want:%q", got, name)
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{path: Path{Dir: "testdir", Name: "calculator"}, want: func() string {
			s, _ := Path{Dir: "testdir", Name: "calculator"}.Resolve()
			return s
		}()},
		{path: Path{}, want: "<empty library name>"},
	}
	var got, want []string
	for _, test := range tests {
		got = append(got, test.path.String())
		want = append(want, test.want)
	}
	if !cmp.Equal(got, want) {
		t.Errorf("unexpected String results:\n--- got:\n+++ want:\n%s", cmp.Diff(got, want))
	}
}

func TestSysString(t *testing.T) {
	const ok = "testdir/libcalculator.so"
	got, err := sysString(ok)
	if err != nil {
		t.Errorf("unexpected error from sysString(%q): %v", ok, err)
	}
	if got != ok {
		t.Errorf("unexpected sysString result: got:%q want:%q", got, ok)
	}

	bad := "testdir\x00/libcalculator.so"
	_, err = sysString(bad)
	var cerr *ConversionError
	if !errors.As(err, &cerr) {
		t.Fatalf("unexpected error type from sysString(%q): %v", bad, err)
	}
	if cerr.Path != bad {
		t.Errorf("unexpected path in conversion error: got:%q want:%q", cerr.Path, bad)
	}
	if cerr.Target == "" {
		t.Error("missing target representation in conversion error")
	}
}
