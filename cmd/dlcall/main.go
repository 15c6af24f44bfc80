// Copyright ©2026 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The dlcall executable loads a dynamic library, resolves an exported
// function and calls it with integer arguments, printing the result.
// It exists as a debugging aid; the called function is assumed to take
// and return word-sized integers, and calling anything else through it
// is undefined behaviour.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/kortschak/dylib"
	"github.com/kortschak/dylib/internal/version"
)

// Exit status codes.
const (
	success       = 0
	internalError = 1 << (iota - 1)
	invocationError
)

func main() { os.Exit(Main()) }

func Main() int {
	dir := flag.String("dir", "", "directory holding the library (empty for the loader search path)")
	lib := flag.String("lib", "", "library name without platform prefix or extension")
	logging := flag.String("log", "warn", "logging level (debug, info, warn or error)")
	v := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n  %s -lib <name> [options] <symbol> [arg ...]\n\n",
			os.Args[0], os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if *v {
		err := version.Print(os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return internalError
		}
		return success
	}

	if *lib == "" || flag.NArg() == 0 {
		flag.Usage()
		return invocationError
	}

	var level slog.LevelVar
	err := level.UnmarshalText([]byte(*logging))
	if err != nil {
		flag.Usage()
		return invocationError
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: &level,
	}))

	sym := flag.Arg(0)
	args := make([]uintptr, 0, flag.NArg()-1)
	for _, a := range flag.Args()[1:] {
		u, err := strconv.ParseUint(a, 0, 64)
		if err != nil {
			log.Error("invalid argument", slog.String("arg", a), slog.Any("error", err))
			return invocationError
		}
		args = append(args, uintptr(u))
	}

	path := dylib.Path{Dir: *dir, Name: *lib}
	l, err := dylib.Open(path)
	if err != nil {
		log.Error("failed to open library", slog.Any("error", err))
		return internalError
	}
	defer l.Close()
	log.Debug("opened library", slog.String("path", l.Name()))

	ret, err := call(l, sym, args)
	if err != nil {
		log.Error("failed to call symbol", slog.String("symbol", sym), slog.Any("error", err))
		return internalError
	}
	fmt.Println(ret)
	return success
}

// call invokes sym in l with the given arguments. Each supported arity
// has its own typed signature; anything beyond five arguments is
// rejected.
func call(l *dylib.Lib, sym string, args []uintptr) (uintptr, error) {
	switch len(args) {
	case 0:
		f, err := dylib.Sym[func() uintptr](l, sym)
		if err != nil {
			return 0, err
		}
		return f.Fn()(), nil
	case 1:
		f, err := dylib.Sym[func(uintptr) uintptr](l, sym)
		if err != nil {
			return 0, err
		}
		return f.Fn()(args[0]), nil
	case 2:
		f, err := dylib.Sym[func(uintptr, uintptr) uintptr](l, sym)
		if err != nil {
			return 0, err
		}
		return f.Fn()(args[0], args[1]), nil
	case 3:
		f, err := dylib.Sym[func(uintptr, uintptr, uintptr) uintptr](l, sym)
		if err != nil {
			return 0, err
		}
		return f.Fn()(args[0], args[1], args[2]), nil
	case 4:
		f, err := dylib.Sym[func(uintptr, uintptr, uintptr, uintptr) uintptr](l, sym)
		if err != nil {
			return 0, err
		}
		return f.Fn()(args[0], args[1], args[2], args[3]), nil
	case 5:
		f, err := dylib.Sym[func(uintptr, uintptr, uintptr, uintptr, uintptr) uintptr](l, sym)
		if err != nil {
			return 0, err
		}
		return f.Fn()(args[0], args[1], args[2], args[3], args[4]), nil
	default:
		return 0, fmt.Errorf("unsupported number of arguments: %d", len(args))
	}
}
