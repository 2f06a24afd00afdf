// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package build computes the compiler configuration of the ModDict
// extension module and drives its compilation.
package build

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MajorVersion = 0
	MinorVersion = 1
	DebugVersion = 0
)

// EnvDebug is the environment variable selecting a debug build.
const EnvDebug = "DEBUG"

// debugValues are the exact (case sensitive) values of EnvDebug
// that enable a debug build.
var debugValues = []string{"true", "yes"}

// Version is the major.minor.debug version triple of the module.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Debug int `json:"debug" yaml:"debug"`
}

// CurrentVersion returns the version the module is built as.
func CurrentVersion() Version {
	return Version{Major: MajorVersion, Minor: MinorVersion, Debug: DebugVersion}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Debug)
}

// Macro is a preprocessor macro definition, passed as -DName=Value.
type Macro struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

func (m Macro) String() string {
	return m.Name + "=" + m.Value
}

// Config is the compiler configuration of an extension module.
type Config struct {
	// macros to define, in order
	Define []Macro `json:"define_macros" yaml:"define_macros"`
	// macros to undefine, in order
	Undef []string `json:"undef_macros" yaml:"undef_macros"`
	// extra arguments appended to every compile command
	CompileArgs []string `json:"extra_compile_args" yaml:"extra_compile_args"`
}

// DebugEnabled reports whether env selects a debug build.
// Unset or unrecognized values select a release build.
func DebugEnabled(env map[string]string) bool {
	v, ok := env[EnvDebug]
	if !ok {
		return false
	}
	for _, dv := range debugValues {
		if v == dv {
			return true
		}
	}
	return false
}

// ResolveConfig returns the compiler configuration for env.
//
// The version macros and warning flags are always present and always
// come first; a debug build appends DEBUG=1, undefines NDEBUG and
// disables optimizations.
func ResolveConfig(env map[string]string) Config {
	v := CurrentVersion()
	cfg := Config{
		Define: []Macro{
			{"MAJOR_VERSION", strconv.Itoa(v.Major)},
			{"MINOR_VERSION", strconv.Itoa(v.Minor)},
			{"DEBUG_VERSION", strconv.Itoa(v.Debug)},
		},
		Undef: []string{},
		CompileArgs: []string{
			"-W",
			"-Wall",
			"-Wno-invalid-offsetof",
			"-Wno-deprecated-declarations",
		},
	}

	if DebugEnabled(env) {
		cfg.Define = append(cfg.Define, Macro{"DEBUG", "1"})
		cfg.Undef = append(cfg.Undef, "NDEBUG")
		cfg.CompileArgs = append(cfg.CompileArgs, "-O0")
	}
	return cfg
}

// CFlags returns the compiler arguments for cfg: one -D per defined
// macro, one -U per undefined macro, then the extra compile args.
func (cfg Config) CFlags() []string {
	args := make([]string, 0, len(cfg.Define)+len(cfg.Undef)+len(cfg.CompileArgs))
	for _, m := range cfg.Define {
		args = append(args, "-D"+m.String())
	}
	for _, name := range cfg.Undef {
		args = append(args, "-U"+name)
	}
	return append(args, cfg.CompileArgs...)
}

// Environ converts KEY=VALUE pairs, as returned by os.Environ, into a map.
// Pairs without '=' are ignored; later pairs override earlier ones.
func Environ(kv []string) map[string]string {
	env := make(map[string]string, len(kv))
	for _, s := range kv {
		i := strings.Index(s, "=")
		if i <= 0 {
			continue
		}
		env[s[:i]] = s[i+1:]
	}
	return env
}
