package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/edenbay/bookstore-service/internal/errs"
	"github.com/edenbay/bookstore-service/internal/model"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=state.go -destination=mocks/mock.go

type BookstoreAPI interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, candidate model.BookCreateRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id string, patch model.BookPatch) (model.Book, error)
	DeleteBook(ctx context.Context, id string) (model.DeleteBookResponse, error)
}

var _ BookstoreAPI = (*Client)(nil)

const (
	defaultVisibleCount = 6
	showMoreStep        = 6

	defaultNoticeTTL         = 3 * time.Second
	defaultInactivityTimeout = 5 * time.Minute
)

// Draft holds the editable fields of the book currently open in the editor.
type Draft struct {
	Title       string
	Author      string
	Price       float64
	Description string
}

// Browser mirrors the books page state: the fetched list, the title filter,
// the visible-count window and the modal editor draft. All mutations of
// server state go through the API; the local list is adjusted only after
// the server confirms.
type Browser struct {
	api BookstoreAPI
	log *zap.Logger

	mu              sync.Mutex
	books           []model.Book
	searchTerm      string
	visibleCount    int
	selected        *model.Book
	draft           Draft
	stockAdjustment int
	notice          string
	noticeTimer     *time.Timer
	sessionExpired  bool

	noticeTTL         time.Duration
	inactivityTimeout time.Duration
	inactivityTimer   *time.Timer
	onExpire          func()
}

type BrowserOption func(*Browser)

func WithInactivityTimeout(d time.Duration) BrowserOption {
	return func(b *Browser) {
		b.inactivityTimeout = d
	}
}

func WithNoticeTTL(d time.Duration) BrowserOption {
	return func(b *Browser) {
		b.noticeTTL = d
	}
}

// WithOnExpire sets the callback invoked when the inactivity timer fires,
// typically a redirect to the login page. Pure UX, not a security boundary.
func WithOnExpire(fn func()) BrowserOption {
	return func(b *Browser) {
		b.onExpire = fn
	}
}

func NewBrowser(api BookstoreAPI, log *zap.Logger, ops ...BrowserOption) *Browser {
	b := &Browser{
		api:               api,
		log:               log.Named("browser"),
		visibleCount:      defaultVisibleCount,
		noticeTTL:         defaultNoticeTTL,
		inactivityTimeout: defaultInactivityTimeout,
		onExpire:          func() {},
	}
	for _, op := range ops {
		op(b)
	}
	return b
}

// Load issues the single list fetch and starts the inactivity timer. On
// failure the local list is left as is.
func (b *Browser) Load(ctx context.Context) error {
	books, err := b.api.ListBooks(ctx)
	if err != nil {
		b.log.Error("fetch books", zap.Error(err))
		return err
	}
	b.mu.Lock()
	b.books = books
	b.visibleCount = defaultVisibleCount
	b.mu.Unlock()
	b.Touch()
	return nil
}

// Touch restarts the inactivity timer. Call it on any detected activity.
func (b *Browser) Touch() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessionExpired = false
	if b.inactivityTimer != nil {
		b.inactivityTimer.Stop()
	}
	b.inactivityTimer = time.AfterFunc(b.inactivityTimeout, b.expire)
}

func (b *Browser) expire() {
	b.mu.Lock()
	b.sessionExpired = true
	b.mu.Unlock()
	b.log.Info("session expired")
	b.onExpire()
}

func (b *Browser) SessionExpired() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessionExpired
}

// AddBook submits a candidate record and, on success, appends the
// server-returned record to the local list. No re-fetch.
func (b *Browser) AddBook(ctx context.Context, candidate model.BookCreateRequest) error {
	book, err := b.api.CreateBook(ctx, candidate)
	if err != nil {
		b.log.Error("add book", zap.Error(err))
		return err
	}
	b.mu.Lock()
	b.books = append(b.books, book)
	b.mu.Unlock()
	b.setNotice("Book added successfully!")
	return nil
}

// OpenEditor seeds the draft from the clicked record and resets the stock
// adjustment.
func (b *Browser) OpenEditor(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.books {
		if b.books[i].Id == id {
			book := b.books[i]
			b.selected = &book
			b.draft = Draft{
				Title:       book.Title,
				Author:      book.Author,
				Price:       book.Price,
				Description: book.Description,
			}
			b.stockAdjustment = 0
			return nil
		}
	}
	return errs.ErrNotFound
}

func (b *Browser) Draft() *Draft {
	return &b.draft
}

func (b *Browser) SetStockAdjustment(delta int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stockAdjustment = delta
}

// SubmitEdit computes the new stock from the adjustment delta, clamped at
// zero, and sends the full draft with the absolute stock value. On success
// the matching list entry is replaced by the server-returned record.
func (b *Browser) SubmitEdit(ctx context.Context) error {
	b.mu.Lock()
	if b.selected == nil {
		b.mu.Unlock()
		return errs.ErrNotFound
	}
	id := b.selected.Id
	newStock := clampStock(b.selected.Stock, b.stockAdjustment)
	patch := model.BookPatch{
		Title:       &b.draft.Title,
		Author:      &b.draft.Author,
		Price:       &b.draft.Price,
		Description: &b.draft.Description,
		Stock:       &newStock,
	}
	b.mu.Unlock()

	book, err := b.api.UpdateBook(ctx, id, patch)
	if err != nil {
		b.log.Error("update book", zap.Error(err))
		return err
	}

	b.mu.Lock()
	for i := range b.books {
		if b.books[i].Id == book.Id {
			b.books[i] = book
			break
		}
	}
	b.selected = nil
	b.draft = Draft{}
	b.stockAdjustment = 0
	b.mu.Unlock()
	b.setNotice("Book updated successfully!")
	return nil
}

// DeleteSelected removes the selected record from the local list only after
// the server confirms the delete.
func (b *Browser) DeleteSelected(ctx context.Context) error {
	b.mu.Lock()
	if b.selected == nil {
		b.mu.Unlock()
		return errs.ErrNotFound
	}
	id := b.selected.Id
	b.mu.Unlock()

	if _, err := b.api.DeleteBook(ctx, id); err != nil {
		b.log.Error("delete book", zap.Error(err))
		return err
	}

	b.mu.Lock()
	books := b.books[:0]
	for _, book := range b.books {
		if book.Id != id {
			books = append(books, book)
		}
	}
	b.books = books
	b.selected = nil
	b.mu.Unlock()
	b.setNotice("Book deleted successfully!")
	return nil
}

func (b *Browser) SetSearchTerm(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.searchTerm = term
}

// VisibleBooks applies the case-insensitive title filter, then the
// visible-count window.
func (b *Browser) VisibleBooks() []model.Book {
	b.mu.Lock()
	defer b.mu.Unlock()
	filtered := b.filtered()
	if len(filtered) > b.visibleCount {
		filtered = filtered[:b.visibleCount]
	}
	return filtered
}

// ShowMore widens the visible window. It never re-fetches.
func (b *Browser) ShowMore() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.visibleCount += showMoreStep
}

func (b *Browser) HasMore() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.filtered()) > b.visibleCount
}

func (b *Browser) filtered() []model.Book {
	if b.searchTerm == "" {
		return append([]model.Book(nil), b.books...)
	}
	term := strings.ToLower(b.searchTerm)
	filtered := make([]model.Book, 0, len(b.books))
	for _, book := range b.books {
		if strings.Contains(strings.ToLower(book.Title), term) {
			filtered = append(filtered, book)
		}
	}
	return filtered
}

func (b *Browser) Notice() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.notice
}

func (b *Browser) setNotice(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notice = msg
	if b.noticeTimer != nil {
		b.noticeTimer.Stop()
	}
	b.noticeTimer = time.AfterFunc(b.noticeTTL, func() {
		b.mu.Lock()
		b.notice = ""
		b.mu.Unlock()
	})
}

// Close stops the timers. In-flight requests are not cancelled.
func (b *Browser) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.inactivityTimer != nil {
		b.inactivityTimer.Stop()
	}
	if b.noticeTimer != nil {
		b.noticeTimer.Stop()
	}
}

func clampStock(current, delta int) int {
	if newStock := current + delta; newStock > 0 {
		return newStock
	}
	return 0
}
