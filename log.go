// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// newLogger returns a development logger for debug builds and a
// production logger otherwise. Both write to stderr.
func newLogger(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "could not create logger")
	}
	return l.Sugar(), nil
}
