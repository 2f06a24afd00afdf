// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (linux && !android) || dragonfly || freebsd || netbsd || openbsd

package main

const libExt = ".so"

var linkArgs = []string{"-shared"}
