// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os/exec"

	"github.com/pkg/errors"
)

// defaultVM returns the first python 3 interpreter found on PATH.
func defaultVM() (string, error) {
	for _, vm := range []string{"python3", "python"} {
		py, err := exec.LookPath(vm)
		if err != nil {
			continue
		}
		out, err := exec.Command(py, "--version").CombinedOutput()
		if err != nil {
			continue
		}
		if bytes.HasPrefix(out, []byte("Python 3")) {
			return vm, nil
		}
		logger.Debugw("skipping python interpreter", "vm", vm, "version", string(bytes.TrimSpace(out)))
	}
	return "", errors.New("moddict: could not locate a python 3 interpreter")
}
