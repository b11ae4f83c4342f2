// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// [ErrInvalidAppConfigs], [ErrInvalidStorageConfigs] or
// [ErrInvalidServerConfigs] otherwise.
func (cfg *StructuredConfig) validate() error {
	switch {
	case cfg.App.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	case cfg.App.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is empty", ErrInvalidAppConfigs)
	case cfg.App.TokenDuration <= 0:
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	case cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost:
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	switch {
	case cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	case cfg.Storage.DB.DSN == "":
		return fmt.Errorf("%w: database DSN is empty", ErrInvalidStorageConfigs)
	case cfg.Storage.DB.MaxOpenConns < 0:
		return fmt.Errorf("%w: max open connections must not be negative", ErrInvalidStorageConfigs)
	}

	switch {
	case cfg.Server.HTTPAddress == "":
		return fmt.Errorf("%w: listen address is empty", ErrInvalidServerConfigs)
	case cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0:
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}
