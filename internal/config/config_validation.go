// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: max open conns must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.Generative.BaseURL == "" || cfg.Adapter.Generative.MaxTokens <= 0 {
		return fmt.Errorf("%w: generative model", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.Images.BaseURL == "" || cfg.Adapter.Images.RatePerSecond <= 0 || cfg.Adapter.Images.Burst <= 0 {
		return fmt.Errorf("%w: image lookup", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.ImageQueueSize <= 0 || cfg.Workers.ImageWorkers <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
