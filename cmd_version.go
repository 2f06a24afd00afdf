// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/go-python/moddict/build"
)

func moddictMakeCmdVersion() *commander.Command {
	return &commander.Command{
		Run:       moddictRunCmdVersion,
		UsageLine: "version",
		Short:     "print the ModDict version",
		Flag:      *flag.NewFlagSet("moddict-version", flag.ExitOnError),
	}
}

func moddictRunCmdVersion(cmdr *commander.Command, args []string) error {
	fmt.Fprintf(stdout, "%s %s\n", build.ModuleName, build.CurrentVersion())
	return nil
}
