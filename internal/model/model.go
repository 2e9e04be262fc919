package model

type Book struct {
	Id          string  `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Author      string  `json:"author" db:"author"`
	Price       float64 `json:"price" db:"price"`
	Description string  `json:"description" db:"description"`
	Stock       int     `json:"stock" db:"stock"`
}

// BookCreateRequest carries a candidate book without an identifier.
// Price is a pointer so a zero price still counts as present.
type BookCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Author      string   `json:"author" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"`
}

// BookPatch is an explicit optional-field patch: nil fields keep their
// prior value, set fields replace it verbatim.
type BookPatch struct {
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Stock       *int     `json:"stock"`
}

type DeleteBookResponse struct {
	Message     string `json:"message"`
	DeletedBook Book   `json:"deletedBook"`
}

type BookEvent struct {
	Type string `json:"type"`
	Book Book   `json:"book"`
}

const (
	BookEventCreated = "created"
	BookEventUpdated = "updated"
	BookEventDeleted = "deleted"
)

// StockEvent is an external stock delta applied to a book, clamped at zero.
type StockEvent struct {
	BookId string `json:"bookId"`
	Delta  int    `json:"delta"`
}

type User struct {
	Id           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

type UserCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16"`
}

type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
}
