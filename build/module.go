// Copyright 2026 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package build

const (
	ModuleName   = "ModDict"
	ModuleSource = "ModDict.c"
)

// Module describes one compiled extension module.
type Module struct {
	Name        string   `json:"name" yaml:"name"`
	Version     string   `json:"version" yaml:"version"`
	Description string   `json:"description" yaml:"description"`
	Config      Config   `json:"config" yaml:"config"`
	Sources     []string `json:"sources" yaml:"sources"`
}

// NewModule returns the ModDict module descriptor resolved against env.
func NewModule(env map[string]string) *Module {
	return &Module{
		Name:        ModuleName,
		Version:     CurrentVersion().String(),
		Description: "",
		Config:      ResolveConfig(env),
		Sources:     []string{ModuleSource},
	}
}
