// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package config

import "github.com/albertocavalcante/dbgprint/generator"

// Config is the dbgprint configuration file.
type Config struct {
	// CustomVariableTemplate overrides scalar prints; "{variable}" is
	// replaced by the identifier.
	CustomVariableTemplate string `yaml:"customVariableTemplate"`

	// CustomArrayTemplate overrides collection prints; "{array}" is
	// replaced by the identifier.
	CustomArrayTemplate string `yaml:"customArrayTemplate"`

	// MaxBufferSize caps the recent-variable buffer.
	MaxBufferSize int `yaml:"maxBufferSize"`

	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
}

type LoggingConfig struct {
	Format string `yaml:"format"` // text or json
	Level  string `yaml:"level"`
}

type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// Renderer returns the template settings in the form the renderer uses.
func (c *Config) Renderer() generator.Config {
	return generator.Config{
		VariableTemplate: c.CustomVariableTemplate,
		ArrayTemplate:    c.CustomArrayTemplate,
	}
}
