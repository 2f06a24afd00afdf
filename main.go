// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"

	"github.com/go-python/moddict/build"
)

var (
	stdout io.Writer = os.Stdout

	logger = zap.NewNop().Sugar()
)

// environ returns the host environment as seen by the build descriptor.
func environ() map[string]string {
	return build.Environ(os.Environ())
}

func run(args []string) error {
	app := &commander.Command{
		UsageLine: "moddict",
		Subcommands: []*commander.Command{
			moddictMakeCmdConfig(),
			moddictMakeCmdSetup(),
			moddictMakeCmdBuild(),
			moddictMakeCmdVersion(),
		},
		Flag: *flag.NewFlagSet("moddict", flag.ExitOnError),
	}
	app.Flag.Bool("v", false, "verbose (development) logging")

	err := app.Flag.Parse(args)
	if err != nil {
		return fmt.Errorf("could not parse flags: %v", err)
	}

	verbose := app.Flag.Lookup("v").Value.Get().(bool)
	l, err := newLogger(verbose || build.DebugEnabled(environ()))
	if err != nil {
		return err
	}
	defer l.Sync()
	logger = l

	appArgs := app.Flag.Args()
	err = app.Dispatch(appArgs)
	if err != nil {
		return fmt.Errorf("error dispatching command: %v", err)
	}
	return nil
}

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(0)
}
