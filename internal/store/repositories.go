package store

import "bookshelf/internal/logger"

// Repositories groups every repository implementation behind their
// interfaces for injection into the service layer.
type Repositories struct {
	UserRepository UserRepository
	BookRepository BookRepository
}

// NewRepositories constructs all repositories over a shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		BookRepository: NewBookRepository(db, logger),
	}
}
