// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
moddict resolves the build configuration of the ModDict CPython extension
module and compiles it.

The configuration is derived from the module version and the DEBUG
environment variable: DEBUG=true or DEBUG=yes selects a debug build, which
defines DEBUG, undefines NDEBUG and compiles with -O0. Any other value,
including TRUE, selects a release build.

	$ moddict config
	$ DEBUG=yes moddict config -format=yaml
	$ moddict setup -output=dist
	$ moddict build -vm=python3 -src=./c -output=build
*/
package main
