// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"

	"github.com/go-python/moddict/build"
)

func moddictMakeCmdSetup() *commander.Command {
	cmd := &commander.Command{
		Run:       moddictRunCmdSetup,
		UsageLine: "setup [options]",
		Short:     "generate a setup.py for ModDict",
		Long: `
setup writes a python setup.py that builds the ModDict extension with the
configuration resolved from the current environment.

ex:
 $ moddict setup
 $ DEBUG=yes moddict setup -output=dist
`,
		Flag: *flag.NewFlagSet("moddict-setup", flag.ExitOnError),
	}

	cmd.Flag.String("output", "", "output directory for setup.py")
	return cmd
}

func moddictRunCmdSetup(cmdr *commander.Command, args []string) error {
	odir := cmdr.Flag.Lookup("output").Value.Get().(string)

	odir, err := genOutDir(odir)
	if err != nil {
		return err
	}

	m := build.NewModule(environ())
	fname := filepath.Join(odir, "setup.py")
	f, err := os.Create(fname)
	if err != nil {
		return errors.Wrapf(err, "could not create %s", fname)
	}
	defer f.Close()

	err = m.WriteSetup(f)
	if err != nil {
		return err
	}
	err = f.Close()
	if err != nil {
		return errors.Wrapf(err, "could not close %s", fname)
	}

	logger.Infow("generated setup.py", "path", fname, "version", m.Version)
	fmt.Fprintf(stdout, "%s\n", fname)
	return nil
}
