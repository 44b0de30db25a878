// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from environment variables. Fields are
// mapped through their `env` and `envPrefix` tags, so nested groups read
// e.g. ADAPTER_IMAGES_API_KEY. Unset variables leave fields at zero value.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
