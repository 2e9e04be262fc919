package client_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/edenbay/bookstore-service/client"
	"github.com/edenbay/bookstore-service/internal/errs"
	"github.com/edenbay/bookstore-service/internal/handler"
	"github.com/edenbay/bookstore-service/internal/model"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/edenbay/bookstore-service/internal/handler/mocks"
)

func newTestClient(t *testing.T) (*client.Client, *service_mocks.MockBookstoreService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	svc := service_mocks.NewMockBookstoreService(c)

	log := zap.NewNop()
	h := handler.New(svc, "*", log)
	srv := httptest.NewServer(h.NewRouter())
	t.Cleanup(srv.Close)

	return client.New(srv.URL, log), svc
}

func TestClient_ListBooks(t *testing.T) {
	t.Parallel()
	api, svc := newTestClient(t)

	want := []model.Book{
		{Id: "id-1", Title: "A", Author: "B", Price: 10, Stock: 5},
		{Id: "id-2", Title: "C", Author: "D", Price: 7.5},
	}
	svc.EXPECT().ListBooks(gomock.Any()).Return(want, nil)

	books, err := api.ListBooks(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, books)
}

func TestClient_CreateBook(t *testing.T) {
	t.Parallel()
	api, svc := newTestClient(t)

	price := 10.0
	created := model.Book{Id: "id-1", Title: "A", Author: "B", Price: 10, Stock: 5}
	svc.EXPECT().
		CreateBook(gomock.Any(), model.BookCreateRequest{Title: "A", Author: "B", Price: &price, Stock: 5}).
		Return(created, nil)

	book, err := api.CreateBook(context.Background(), model.BookCreateRequest{
		Title: "A", Author: "B", Price: &price, Stock: 5,
	})
	require.NoError(t, err)
	require.Equal(t, created, book)
}

func TestClient_UpdateBook_NotFound(t *testing.T) {
	t.Parallel()
	api, svc := newTestClient(t)

	svc.EXPECT().
		UpdateBook(gomock.Any(), "missing", gomock.Any()).
		Return(model.Book{}, errs.ErrNotFound)

	stock := 2
	_, err := api.UpdateBook(context.Background(), "missing", model.BookPatch{Stock: &stock})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestClient_DeleteBook(t *testing.T) {
	t.Parallel()
	api, svc := newTestClient(t)

	deleted := model.Book{Id: "id-1", Title: "A", Author: "B", Price: 10}
	svc.EXPECT().
		DeleteBook(gomock.Any(), "id-1").
		Return(deleted, nil)

	resp, err := api.DeleteBook(context.Background(), "id-1")
	require.NoError(t, err)
	require.Equal(t, "Book deleted successfully", resp.Message)
	require.Equal(t, deleted, resp.DeletedBook)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	t.Parallel()
	api, svc := newTestClient(t)

	svc.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(model.AuthResponse{}, errs.ErrInvalidCredentials)

	_, err := api.Login(context.Background(), model.AuthRequest{
		Email:    "reader@books.io",
		Password: "wrong-pass",
	})
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestClient_Register(t *testing.T) {
	t.Parallel()
	api, svc := newTestClient(t)

	created := model.User{Id: "user-1", Name: "Reader", Email: "reader@books.io"}
	svc.EXPECT().
		RegisterUser(gomock.Any(), model.UserCreateRequest{
			Name: "Reader", Email: "reader@books.io", Password: "p4ssw0rd!",
		}).
		Return(created, nil)

	user, err := api.Register(context.Background(), model.UserCreateRequest{
		Name: "Reader", Email: "reader@books.io", Password: "p4ssw0rd!",
	})
	require.NoError(t, err)
	require.Equal(t, created, user)
}
