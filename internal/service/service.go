package service

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/edenbay/bookstore-service/internal/errs"
	"github.com/edenbay/bookstore-service/internal/model"
	bookRepo "github.com/edenbay/bookstore-service/internal/repository"
	"github.com/edenbay/bookstore-service/pkg/auth"
	"github.com/edenbay/bookstore-service/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	log      *zap.Logger
	repo     bookRepo.Repository
	producer sarama.SyncProducer
	jwtKey   []byte
}

func NewService(repo bookRepo.Repository, producer sarama.SyncProducer, jwtKey []byte, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
		jwtKey:   jwtKey,
	}
}

func (s *Service) CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error) {
	book, err := s.repo.CreateBook(ctx, req)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(model.BookEventCreated, book)
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) UpdateBook(ctx context.Context, id string, patch model.BookPatch) (model.Book, error) {
	book, err := s.repo.UpdateBook(ctx, id, patch)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(model.BookEventUpdated, book)
	return book, nil
}

func (s *Service) DeleteBook(ctx context.Context, id string) (model.Book, error) {
	book, err := s.repo.DeleteBook(ctx, id)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(model.BookEventDeleted, book)
	return book, nil
}

// AdjustStock applies an external stock delta, clamped at zero at the store.
func (s *Service) AdjustStock(ctx context.Context, id string, delta int) error {
	return s.repo.AdjustStock(ctx, id, delta)
}

func (s *Service) RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, err
	}
	return s.repo.CreateUser(ctx, model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
}

func (s *Service) Login(ctx context.Context, req model.AuthRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.AuthResponse{}, errs.ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.AuthResponse{}, errs.ErrInvalidCredentials
	}

	token, expiresIn, err := auth.NewToken(s.jwtKey, user.Id, user.Name, user.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		Id:          user.Id,
		Name:        user.Name,
		Email:       user.Email,
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// publish emits a lifecycle event, best effort. A failed publish does not
// fail the store operation it follows.
func (s *Service) publish(eventType string, book model.Book) {
	if s.producer == nil {
		return
	}
	data, err := json.Marshal(model.BookEvent{Type: eventType, Book: book})
	if err != nil {
		s.log.Error("marshal book event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.BookEventsTopic, Value: sarama.StringEncoder(data)}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		s.log.Warn("publish book event", zap.String("type", eventType), zap.Error(err))
	}
}
