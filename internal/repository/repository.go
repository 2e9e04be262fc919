package repository

import (
	"context"
	"database/sql"

	"github.com/edenbay/bookstore-service/internal/errs"
	"github.com/edenbay/bookstore-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository interface {
	CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id string) (model.Book, error)
	UpdateBook(ctx context.Context, id string, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, id string) (model.Book, error)
	AdjustStock(ctx context.Context, id string, delta int) error

	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName = `books`
	usersTableName = `users`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const bookColumns = `id, title, author, price, description, stock`

func (r *repository) CreateBook(ctx context.Context, req model.BookCreateRequest) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("id", "title", "author", "price", "description", "stock").
		Values(uuid.New(), req.Title, req.Author, *req.Price, req.Description, req.Stock).
		Suffix("returning " + bookColumns).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "price", "description", "stock").
		From(booksTableName).
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	q, args, err := qb.Select("id", "title", "author", "price", "description", "stock").
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// UpdateBook merges the patch into the stored record: nil fields are left
// untouched, set fields replace the prior value.
func (r *repository) UpdateBook(ctx context.Context, id string, patch model.BookPatch) (model.Book, error) {
	upd := qb.Update(booksTableName)
	set := false
	if patch.Title != nil {
		upd, set = upd.Set("title", *patch.Title), true
	}
	if patch.Author != nil {
		upd, set = upd.Set("author", *patch.Author), true
	}
	if patch.Price != nil {
		upd, set = upd.Set("price", *patch.Price), true
	}
	if patch.Description != nil {
		upd, set = upd.Set("description", *patch.Description), true
	}
	if patch.Stock != nil {
		upd, set = upd.Set("stock", *patch.Stock), true
	}
	if !set {
		// nothing to change, an empty patch returns the current record
		return r.GetBook(ctx, id)
	}

	q, args, err := upd.
		Where(sq.Eq{"id": id}).
		Suffix("returning " + bookColumns).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		r.log.Error("UpdateBook", zap.String("q", q), zap.Any("args", args))
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) DeleteBook(ctx context.Context, id string) (model.Book, error) {
	q, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": id}).
		Suffix("returning " + bookColumns).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

// AdjustStock applies a delta to the stored stock, clamped at zero.
func (r *repository) AdjustStock(ctx context.Context, id string, delta int) error {
	q := `
update books
    set stock = greatest(0, stock + $2)
where id = $1`
	res, err := r.db.ExecContext(ctx, q, id, delta)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("id", "name", "email", "password_hash").
		Values(uuid.New(), user.Name, user.Email, user.PasswordHash).
		Suffix("returning id, name, email, password_hash").
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var created model.User
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.User{}, errs.ErrDuplicateEmail
		}
		r.log.Error("CreateUser", zap.String("q", q))
		return model.User{}, err
	}
	return created, nil
}

func (r *repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	q, args, err := qb.Select("id", "name", "email", "password_hash").
		From(usersTableName).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}

	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrNotFound
		}
		return model.User{}, err
	}
	return user, nil
}
