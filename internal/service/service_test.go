package service_test

import (
	"context"
	"testing"

	saramamocks "github.com/IBM/sarama/mocks"
	"github.com/edenbay/bookstore-service/internal/errs"
	"github.com/edenbay/bookstore-service/internal/model"
	"github.com/edenbay/bookstore-service/internal/service"
	"github.com/edenbay/bookstore-service/pkg/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	book  model.Book
	books []model.Book
	user  model.User
	err   error

	createdUser   model.User
	adjustedID    string
	adjustedDelta int
}

func (f *fakeRepo) CreateBook(_ context.Context, _ model.BookCreateRequest) (model.Book, error) {
	return f.book, f.err
}

func (f *fakeRepo) ListBooks(_ context.Context) ([]model.Book, error) {
	return f.books, f.err
}

func (f *fakeRepo) GetBook(_ context.Context, _ string) (model.Book, error) {
	return f.book, f.err
}

func (f *fakeRepo) UpdateBook(_ context.Context, _ string, _ model.BookPatch) (model.Book, error) {
	return f.book, f.err
}

func (f *fakeRepo) DeleteBook(_ context.Context, _ string) (model.Book, error) {
	return f.book, f.err
}

func (f *fakeRepo) AdjustStock(_ context.Context, id string, delta int) error {
	f.adjustedID, f.adjustedDelta = id, delta
	return f.err
}

func (f *fakeRepo) CreateUser(_ context.Context, user model.User) (model.User, error) {
	f.createdUser = user
	return user, f.err
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, _ string) (model.User, error) {
	return f.user, f.err
}

var testJWTKey = []byte("test-key")

func TestService_CreateBook_PublishesEvent(t *testing.T) {
	t.Parallel()
	producer := saramamocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndSucceed()

	repo := &fakeRepo{book: model.Book{Id: "id-1", Title: "A", Author: "B", Price: 10, Stock: 5}}
	svc := service.NewService(repo, producer, testJWTKey, zap.NewNop())

	book, err := svc.CreateBook(context.Background(), model.BookCreateRequest{
		Title: "A", Author: "B", Price: fptr(10), Stock: 5,
	})
	require.NoError(t, err)
	require.Equal(t, repo.book, book)
	require.NoError(t, producer.Close())
}

func TestService_CreateBook_PublishFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	producer := saramamocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(errors.New("kafka down"))

	repo := &fakeRepo{book: model.Book{Id: "id-1", Title: "A"}}
	svc := service.NewService(repo, producer, testJWTKey, zap.NewNop())

	_, err := svc.CreateBook(context.Background(), model.BookCreateRequest{
		Title: "A", Author: "B", Price: fptr(10),
	})
	require.NoError(t, err)
	require.NoError(t, producer.Close())
}

func TestService_DeleteBook_PublishesEvent(t *testing.T) {
	t.Parallel()
	producer := saramamocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndSucceed()

	repo := &fakeRepo{book: model.Book{Id: "id-1", Title: "A"}}
	svc := service.NewService(repo, producer, testJWTKey, zap.NewNop())

	book, err := svc.DeleteBook(context.Background(), "id-1")
	require.NoError(t, err)
	require.Equal(t, "id-1", book.Id)
	require.NoError(t, producer.Close())
}

func TestService_AdjustStock(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := service.NewService(repo, nil, testJWTKey, zap.NewNop())

	require.NoError(t, svc.AdjustStock(context.Background(), "id-1", -3))
	require.Equal(t, "id-1", repo.adjustedID)
	require.Equal(t, -3, repo.adjustedDelta)
}

func TestService_RegisterUser_HashesPassword(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{}
	svc := service.NewService(repo, nil, testJWTKey, zap.NewNop())

	user, err := svc.RegisterUser(context.Background(), model.UserCreateRequest{
		Name:     "Reader",
		Email:    "reader@books.io",
		Password: "p4ssw0rd!",
	})
	require.NoError(t, err)
	require.NotEqual(t, "p4ssw0rd!", user.PasswordHash)
	require.NoError(t,
		bcrypt.CompareHashAndPassword([]byte(repo.createdUser.PasswordHash), []byte("p4ssw0rd!")))
}

func TestService_Login(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("p4ssw0rd!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeRepo{user: model.User{
		Id:           "user-1",
		Name:         "Reader",
		Email:        "reader@books.io",
		PasswordHash: string(hash),
	}}
	svc := service.NewService(repo, nil, testJWTKey, zap.NewNop())

	resp, err := svc.Login(context.Background(), model.AuthRequest{
		Email:    "reader@books.io",
		Password: "p4ssw0rd!",
	})
	require.NoError(t, err)
	require.Equal(t, "user-1", resp.Id)
	require.NotEmpty(t, resp.AccessToken)

	claims := new(auth.Claims)
	token, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return testJWTKey, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "reader@books.io", claims.Profile.Email)
}

func TestService_Login_WrongPassword(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("p4ssw0rd!"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeRepo{user: model.User{Email: "reader@books.io", PasswordHash: string(hash)}}
	svc := service.NewService(repo, nil, testJWTKey, zap.NewNop())

	_, err = svc.Login(context.Background(), model.AuthRequest{
		Email:    "reader@books.io",
		Password: "wrong-pass",
	})
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{err: errs.ErrNotFound}
	svc := service.NewService(repo, nil, testJWTKey, zap.NewNop())

	_, err := svc.Login(context.Background(), model.AuthRequest{
		Email:    "nobody@books.io",
		Password: "p4ssw0rd!",
	})
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func fptr(f float64) *float64 { return &f }
