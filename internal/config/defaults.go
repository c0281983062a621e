package config

import "time"

// defaultConfig holds the built-in fallback values applied by the builder
// after all other sources have been merged. Secrets (the token sign key) and
// the database DSN deliberately have no defaults and must be supplied.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenIssuer:   "bookshelf",
			TokenDuration: 24 * time.Hour,
		},
		Storage: Storage{
			DB: DB{
				Driver: "pgx",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
