// Copyright (c) 2025 The itembench Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package config provides configuration types, validation, and masking.
package config

import (
	"fmt"

	masker "github.com/ggwhite/go-masker/v2"
	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration against the struct's validate tags.
func Validate(
	cfg *Config,
) error {
	v := validator.New()

	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Database.Driver == "sqlite" && cfg.Database.Path == "" {
		return fmt.Errorf("invalid configuration: database.path required for sqlite driver")
	}

	return nil
}

// Masked returns a copy of the configuration with sensitive fields masked
// according to the struct's mask tags. Safe for logging.
func Masked(
	cfg *Config,
) (any, error) {
	m := masker.NewMaskerMarshaler()

	masked, err := m.Struct(cfg)
	if err != nil {
		return nil, fmt.Errorf("masking configuration: %w", err)
	}

	return masked, nil
}
