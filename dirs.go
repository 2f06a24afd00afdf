// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// genOutDir makes sure the output directory exists and returns its
// absolute path. An empty odir means the current directory.
func genOutDir(odir string) (string, error) {
	if odir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "could not get working directory")
		}
		return cwd, nil
	}
	err := os.MkdirAll(odir, 0755)
	if err != nil {
		return "", errors.Wrapf(err, "could not create output directory %q", odir)
	}
	return filepath.Abs(odir)
}
