package config

import "time"

// Defaults applied before any other source.
const (
	DefaultTokenIssuer      = "my-gram"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultPasswordHashCost = 10
	DefaultLogLevel         = "info"
	DefaultDBDriver         = DriverPostgres
	DefaultMaxOpenConns     = 10
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: DefaultPasswordHashCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DefaultDBDriver,
				MaxOpenConns: DefaultMaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			CORSOrigins:     []string{"*"},
		},
	}
}
