// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Anna Volkova

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The server address, timeout, and page size always carry defaults, so the
// only hard requirement left to the operator is the database DSN.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.PageSize < 1 {
		return ErrInvalidServerConfigs
	}

	return nil
}
