package handler

import (
	"context"

	"github.com/edenbay/bookstore-service/internal/model"
	"github.com/edenbay/bookstore-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookstoreService interface {
	CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id string, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, id string) (model.Book, error)
	RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error)
}

var _ BookstoreService = (*service.Service)(nil)
