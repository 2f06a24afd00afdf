// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/go-python/moddict/build"
)

func moddictMakeCmdConfig() *commander.Command {
	cmd := &commander.Command{
		Run:       moddictRunCmdConfig,
		UsageLine: "config [options]",
		Short:     "print the resolved build configuration",
		Long: `
config prints the module descriptor of ModDict: its version, the macros to
define and undefine and the extra compiler arguments, as resolved from the
environment (DEBUG=true|yes selects a debug build).

ex:
 $ moddict config
 $ DEBUG=yes moddict config -format=json
`,
		Flag: *flag.NewFlagSet("moddict-config", flag.ExitOnError),
	}

	cmd.Flag.String("format", "text", "output format (text|json|yaml)")
	return cmd
}

func moddictRunCmdConfig(cmdr *commander.Command, args []string) error {
	format := cmdr.Flag.Lookup("format").Value.Get().(string)

	m := build.NewModule(environ())
	logger.Debugw("resolved module", "module", m.Name, "version", m.Version,
		"debug", len(m.Config.Undef) > 0)
	return writeModule(stdout, m, format)
}

func writeModule(w io.Writer, m *build.Module, format string) error {
	switch format {
	case "text", "":
		return writeModuleText(w, m)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err := enc.Encode(m)
		if err != nil {
			return errors.Wrap(err, "could not encode module as JSON")
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err := enc.Encode(m)
		if err != nil {
			return errors.Wrap(err, "could not encode module as YAML")
		}
		return enc.Close()
	default:
		return fmt.Errorf("moddict-config: unknown output format %q", format)
	}
}

func writeModuleText(w io.Writer, m *build.Module) error {
	var (
		title = color.New(color.Bold).SprintFunc()
		key   = color.New(color.FgCyan).SprintFunc()
	)

	defs := make([]string, len(m.Config.Define))
	for i, d := range m.Config.Define {
		defs[i] = d.String()
	}

	_, err := fmt.Fprintf(w, "%s %s\n%s %s\n%s %s\n%s %s\n%s %s\n",
		title(m.Name), m.Version,
		key("define: "), strings.Join(defs, " "),
		key("undef:  "), strings.Join(m.Config.Undef, " "),
		key("cflags: "), strings.Join(m.Config.CompileArgs, " "),
		key("sources:"), strings.Join(m.Sources, " "),
	)
	if err != nil {
		return errors.Wrap(err, "could not write module")
	}
	return nil
}
