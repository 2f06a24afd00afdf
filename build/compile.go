// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// EnvCC names the C compiler when no compiler is given explicitly.
const EnvCC = "CC"

// Command is one compiler invocation.
type Command struct {
	Path string
	Args []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Path + " " + strings.Join(c.Args, " "))
}

// Compiler compiles and links extension modules with a C compiler.
type Compiler struct {
	// C compiler executable
	CC string
	// directory holding the module sources
	Dir string
	// directory receiving objects and the linked module
	OutDir string
	// python VM flags
	Py PyConfig
	// suffix of the linked module when Py.ExtSuffix is empty
	LibExt string
	// arguments making the linker produce a loadable module
	LinkArgs []string
	// print commands without running them
	DryRun bool

	Out io.Writer
	Log *zap.SugaredLogger
}

// CCFromEnv returns cc if set, otherwise $CC, otherwise "cc".
func CCFromEnv(cc string, env map[string]string) string {
	if cc != "" {
		return cc
	}
	if v := env[EnvCC]; v != "" {
		return v
	}
	return "cc"
}

// ModulePath returns the path of the linked module for m.
func (c *Compiler) ModulePath(m *Module) string {
	ext := c.Py.ExtSuffix
	if ext == "" {
		ext = c.LibExt
	}
	return filepath.Join(c.OutDir, m.Name+ext)
}

// Commands returns the compile commands for each source of m,
// followed by the link command.
func (c *Compiler) Commands(m *Module) []Command {
	cflags := m.Config.CFlags()
	pyflags := strings.Fields(c.Py.CFlags)

	var (
		cmds []Command
		objs []string
	)
	for _, src := range m.Sources {
		obj := filepath.Join(c.OutDir, strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))+".o")
		objs = append(objs, obj)

		args := []string{"-c", filepath.Join(c.Dir, src), "-o", obj, "-fPIC"}
		args = append(args, pyflags...)
		args = append(args, cflags...)
		cmds = append(cmds, Command{Path: c.CC, Args: args})
	}

	args := append([]string{}, c.LinkArgs...)
	args = append(args, objs...)
	args = append(args, "-o", c.ModulePath(m))
	args = append(args, strings.Fields(c.Py.LdFlags)...)
	cmds = append(cmds, Command{Path: c.CC, Args: args})
	return cmds
}

// Build compiles and links m, stopping at the first failing command.
func (c *Compiler) Build(ctx context.Context, m *Module) error {
	out := c.Out
	if out == nil {
		out = io.Discard
	}
	log := c.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	fmt.Fprintf(out, "\n--- building %s %s ---\n", m.Name, m.Version)

	if !c.DryRun {
		err := os.MkdirAll(c.OutDir, 0755)
		if err != nil {
			return errors.Wrapf(err, "could not create output directory %q", c.OutDir)
		}
	}

	for _, bc := range c.Commands(m) {
		fmt.Fprintf(out, "%s\n", bc)
		if c.DryRun {
			continue
		}
		log.Debugw("running", "cmd", bc.Path, "args", bc.Args)
		cmd := exec.CommandContext(ctx, bc.Path, bc.Args...)
		cmdout, err := cmd.CombinedOutput()
		if err != nil {
			log.Errorw("command failed", "cmd", bc.String(), "error", err)
			return errors.Wrapf(err, "%s\noutput: %s", bc, cmdout)
		}
	}

	log.Infow("built module", "module", m.Name, "version", m.Version, "path", c.ModulePath(m))
	return nil
}
