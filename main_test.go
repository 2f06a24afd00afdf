// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/go-python/moddict/build"
)

func init() {
	color.NoColor = true
}

// runOutput runs moddict with args and returns what it printed.
func runOutput(t *testing.T, args ...string) string {
	t.Helper()
	buf := new(bytes.Buffer)
	old := stdout
	stdout = buf
	defer func() { stdout = old }()

	err := run(args)
	require.NoError(t, err, "moddict %s", strings.Join(args, " "))
	return buf.String()
}

func TestConfigText(t *testing.T) {
	for _, tt := range []struct {
		debug string
		want  string
	}{
		{
			debug: "",
			want: `ModDict 0.1.0
define:  MAJOR_VERSION=0 MINOR_VERSION=1 DEBUG_VERSION=0
undef:   
cflags:  -W -Wall -Wno-invalid-offsetof -Wno-deprecated-declarations
sources: ModDict.c
`,
		},
		{
			debug: "yes",
			want: `ModDict 0.1.0
define:  MAJOR_VERSION=0 MINOR_VERSION=1 DEBUG_VERSION=0 DEBUG=1
undef:   NDEBUG
cflags:  -W -Wall -Wno-invalid-offsetof -Wno-deprecated-declarations -O0
sources: ModDict.c
`,
		},
	} {
		t.Setenv("DEBUG", tt.debug)
		got := runOutput(t, "config")
		if got != tt.want {
			t.Errorf("DEBUG=%q:\nwant=%q\ngot =%q\n", tt.debug, tt.want, got)
		}
	}
}

func TestConfigJSON(t *testing.T) {
	t.Setenv("DEBUG", "true")
	out := runOutput(t, "config", "-format=json")

	var m build.Module
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, *build.NewModule(map[string]string{"DEBUG": "true"}), m)
	assert.Contains(t, out, `"define_macros"`)
	assert.Contains(t, out, `"extra_compile_args"`)
}

func TestConfigYAML(t *testing.T) {
	// wrong case is a release build
	t.Setenv("DEBUG", "TRUE")
	out := runOutput(t, "config", "-format=yaml")

	var m build.Module
	require.NoError(t, yaml.Unmarshal([]byte(out), &m))
	assert.Equal(t, "ModDict", m.Name)
	assert.Equal(t, "0.1.0", m.Version)
	assert.Empty(t, m.Config.Undef)
	assert.NotContains(t, m.Config.CompileArgs, "-O0")
	assert.Contains(t, out, "undef_macros: []\n")
}

func TestConfigUnknownFormat(t *testing.T) {
	err := writeModule(new(bytes.Buffer), build.NewModule(nil), "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "toml"`)
}

func TestSetup(t *testing.T) {
	t.Setenv("DEBUG", "yes")
	odir := filepath.Join(t.TempDir(), "dist")
	out := runOutput(t, "setup", "-output="+odir)

	fname := filepath.Join(odir, "setup.py")
	assert.Equal(t, fname+"\n", out)

	raw, err := os.ReadFile(fname)
	require.NoError(t, err)

	want := new(bytes.Buffer)
	require.NoError(t, build.NewModule(map[string]string{"DEBUG": "yes"}).WriteSetup(want))
	assert.Equal(t, want.String(), string(raw))
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "ModDict 0.1.0\n", runOutput(t, "version"))
}

func TestBuildDryRun(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skipf("python3 not available: %v", err)
	}
	t.Setenv("DEBUG", "yes")
	odir := filepath.Join(t.TempDir(), "build")
	out := runOutput(t, "build", "-vm=python3", "-cc=moddict-cc", "-src=csrc", "-output="+odir, "-dry-run")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "--- building ModDict 0.1.0 ---", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "moddict-cc -c "+filepath.Join("csrc", "ModDict.c")))
	assert.True(t, strings.HasSuffix(lines[1], "-UNDEBUG -W -Wall -Wno-invalid-offsetof -Wno-deprecated-declarations -O0"))
	assert.Contains(t, lines[2], filepath.Join(odir, "ModDict"))

	_, err := os.Stat(odir)
	assert.True(t, os.IsNotExist(err), "dry run must not create %s", odir)
}

func TestGenOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	got, err := genOutDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	cwd, err := os.Getwd()
	require.NoError(t, err)
	got, err = genOutDir("")
	require.NoError(t, err)
	assert.Equal(t, cwd, got)
}
