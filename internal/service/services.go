package service

import (
	"bookshelf/internal/config"
	"bookshelf/internal/logger"
	"bookshelf/internal/store"
)

type Services struct {
	AuthService AuthService
	UserService UserService
	BookService BookService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, cfg.Auth, logger),
		UserService: NewUserService(repositories.UserRepository, logger),
		BookService: NewBookService(repositories.BookRepository, logger),
	}
}
