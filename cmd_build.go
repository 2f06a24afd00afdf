// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/go-python/moddict/build"
)

func moddictMakeCmdBuild() *commander.Command {
	cmd := &commander.Command{
		Run:       moddictRunCmdBuild,
		UsageLine: "build [options]",
		Short:     "compile and link the ModDict extension module",
		Long: `
build compiles ModDict.c with the resolved configuration and the include
flags of the python interpreter, and links it into a loadable extension
module named after the interpreter's extension suffix.

The C compiler is taken from -cc, then $CC, then cc.

ex:
 $ moddict build -src=./c
 $ DEBUG=yes moddict build -vm=python3.12 -output=build -dry-run
`,
		Flag: *flag.NewFlagSet("moddict-build", flag.ExitOnError),
	}

	cmd.Flag.String("vm", "", "path to python interpreter (default: first python 3 on PATH)")
	cmd.Flag.String("cc", "", "C compiler")
	cmd.Flag.String("src", ".", "directory holding "+build.ModuleSource)
	cmd.Flag.String("output", "build", "output directory for objects and the module")
	cmd.Flag.Bool("dry-run", false, "print the commands without running them")
	return cmd
}

func moddictRunCmdBuild(cmdr *commander.Command, args []string) error {
	var (
		vm     = cmdr.Flag.Lookup("vm").Value.Get().(string)
		cc     = cmdr.Flag.Lookup("cc").Value.Get().(string)
		src    = cmdr.Flag.Lookup("src").Value.Get().(string)
		odir   = cmdr.Flag.Lookup("output").Value.Get().(string)
		dryrun = cmdr.Flag.Lookup("dry-run").Value.Get().(bool)
	)

	env := environ()
	m := build.NewModule(env)

	var err error
	if vm == "" {
		vm, err = defaultVM()
		if err != nil {
			return err
		}
	}
	py, err := build.GetPythonConfig(vm)
	if err != nil {
		return err
	}
	logger.Debugw("python config", "vm", vm, "cflags", py.CFlags, "ldflags", py.LdFlags, "ext", py.ExtSuffix)

	c := &build.Compiler{
		CC:       build.CCFromEnv(cc, env),
		Dir:      src,
		OutDir:   odir,
		Py:       py,
		LibExt:   libExt,
		LinkArgs: linkArgs,
		DryRun:   dryrun,
		Out:      stdout,
		Log:      logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.Build(ctx, m)
}
