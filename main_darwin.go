// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package main

// python only recognizes .so, not .dylib
const libExt = ".so"

var linkArgs = []string{"-bundle", "-undefined", "dynamic_lookup"}
