// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// PyConfig holds the flags needed to build an extension for one python VM.
type PyConfig struct {
	Version   int
	CFlags    string
	LdFlags   string
	ExtSuffix string
}

// AllFlags returns CFlags + " " + LdFlags
func (pc *PyConfig) AllFlags() string {
	return strings.TrimSpace(pc.CFlags) + " " + strings.TrimSpace(pc.LdFlags)
}

const pyConfigScript = `import sys
import sysconfig as sc
import json
import os

cfg = {
	"version": sys.version_info.major,
	"minor": sys.version_info.minor,
	"incdir": sc.get_paths()["include"],
	"libdir": sc.get_config_var("LIBDIR") or "",
	"libpy": sc.get_config_var("LIBRARY") or "",
	"shlibs": sc.get_config_var("SHLIBS") or "",
	"syslibs": sc.get_config_var("SYSLIBS") or "",
	"extsuffix": sc.get_config_var("EXT_SUFFIX") or "",
}
if "MODDICT_INCLUDE" in os.environ and "MODDICT_LIBDIR" in os.environ and "MODDICT_PYLIB" in os.environ:
	cfg["incdir"] = os.environ["MODDICT_INCLUDE"]
	cfg["libdir"] = os.environ["MODDICT_LIBDIR"]
	cfg["libpy"] = os.environ["MODDICT_PYLIB"]
print(json.dumps(cfg))
`

// GetPythonConfig returns the needed python configuration for the given
// python VM (python, python3, pypy3, etc...)
func GetPythonConfig(vm string) (PyConfig, error) {
	var cfg PyConfig
	bin, err := exec.LookPath(vm)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not locate python vm %q", vm)
	}

	buf := new(bytes.Buffer)
	cmd := exec.Command(bin, "-c", pyConfigScript)
	cmd.Stdin = os.Stdin
	cmd.Stdout = buf
	cmd.Stderr = os.Stderr
	err = cmd.Run()
	if err != nil {
		return cfg, errors.Wrap(err, "could not run python-config script")
	}
	return parsePythonConfig(buf)
}

func parsePythonConfig(r io.Reader) (PyConfig, error) {
	var cfg PyConfig
	var raw struct {
		Version   int    `json:"version"`
		Minor     int    `json:"minor"`
		IncDir    string `json:"incdir"`
		LibDir    string `json:"libdir"`
		LibPy     string `json:"libpy"`
		ShLibs    string `json:"shlibs"`
		SysLibs   string `json:"syslibs"`
		ExtSuffix string `json:"extsuffix"`
	}
	err := json.NewDecoder(r).Decode(&raw)
	if err != nil {
		return cfg, errors.Wrapf(err, "could not decode JSON script output")
	}

	raw.IncDir = filepath.ToSlash(raw.IncDir)
	raw.LibDir = filepath.ToSlash(raw.LibDir)

	// on windows these can be empty -- use include dir which is usu good
	if raw.LibDir == "" && raw.IncDir != "" {
		raw.LibDir = raw.IncDir
		if strings.HasSuffix(raw.LibDir, "include") {
			raw.LibDir = raw.LibDir[:len(raw.LibDir)-len("include")] + "libs"
		}
	}

	if raw.LibPy == "" {
		raw.LibPy = fmt.Sprintf("python%d%d", raw.Version, raw.Minor)
	}
	raw.LibPy = strings.TrimSuffix(raw.LibPy, ".a")
	raw.LibPy = strings.TrimPrefix(raw.LibPy, "lib")

	cfg.Version = raw.Version
	cfg.ExtSuffix = raw.ExtSuffix
	cfg.CFlags = "-I" + raw.IncDir
	cfg.LdFlags = strings.Join(strings.Fields(strings.Join([]string{
		"-L" + raw.LibDir,
		"-l" + raw.LibPy,
		raw.ShLibs,
		raw.SysLibs,
	}, " ")), " ")

	return cfg, nil
}
