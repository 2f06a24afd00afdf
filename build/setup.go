// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	setupPreamble = `#!/usr/bin/env python3
# generated by moddict -- edit the build descriptor instead.

from setuptools import setup, Extension

DEFINE_MACROS = [
%[1]s]
UNDEF_MACROS = [
%[2]s]

EXTRA_COMPILE_ARGS = [
%[3]s]

`

	setupCall = `setup(name=%[1]s,
      version=%[2]s,
      description=%[3]s,
      ext_modules=[Extension(
          name=%[1]s,
          define_macros=DEFINE_MACROS,
          undef_macros=UNDEF_MACROS,
          extra_compile_args=EXTRA_COMPILE_ARGS,
          sources=[%[4]s])])
`
)

// WriteSetup writes a setup.py building m with its resolved configuration.
func (m *Module) WriteSetup(w io.Writer) error {
	var defs, undefs, args bytes.Buffer
	for _, d := range m.Config.Define {
		fmt.Fprintf(&defs, "    (%s, %s),\n", pyString(d.Name), pyValue(d.Value))
	}
	for _, u := range m.Config.Undef {
		fmt.Fprintf(&undefs, "    %s,\n", pyString(u))
	}
	for _, a := range m.Config.CompileArgs {
		fmt.Fprintf(&args, "    %s,\n", pyString(a))
	}

	srcs := make([]string, len(m.Sources))
	for i, src := range m.Sources {
		srcs[i] = pyString(src)
	}

	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, setupPreamble, defs.String(), undefs.String(), args.String())
	fmt.Fprintf(buf, setupCall,
		pyString(m.Name),
		pyString(m.Version),
		pyString(m.Description),
		strings.Join(srcs, ", "),
	)

	_, err := io.Copy(w, buf)
	if err != nil {
		return errors.Wrap(err, "could not write setup.py")
	}
	return nil
}

// pyString returns s as a single-quoted python string literal.
func pyString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`)
	return "'" + r.Replace(s) + "'"
}

// pyValue returns integer macro values bare, anything else quoted.
func pyValue(s string) string {
	if _, err := strconv.Atoi(s); err == nil {
		return s
	}
	return pyString(s)
}
