package services

import (
	"bookmart/models"
	"context"
	"net/http"
	"net/url"
	"strings"
)

type BookService struct {
	api *APIClient
}

func NewBookService(api *APIClient) *BookService {
	return &BookService{api: api}
}

func (s *BookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	books := []models.Book{}
	if err := s.api.Do(ctx, http.MethodGet, "/api/books/", "", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *BookService) GetBook(ctx context.Context, id string) (*models.Book, error) {
	var book models.Book
	if err := s.api.Do(ctx, http.MethodGet, "/api/books/"+url.PathEscape(id), "", nil, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *BookService) SearchBooks(ctx context.Context, keyword string) ([]models.Book, error) {
	books := []models.Book{}
	path := "/api/books/search?" + url.Values{"keyword": {keyword}}.Encode()
	if err := s.api.Do(ctx, http.MethodGet, path, "", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// bookPayload is the backend's create/update body. It calls the stock
// count "stock", unlike the "stockQuantity" it returns on books.
type bookPayload struct {
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ISBN        string  `json:"isbn"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

func newBookPayload(book models.BookRequest) bookPayload {
	return bookPayload{
		Title:       book.Title,
		Author:      book.Author,
		Description: book.Description,
		Price:       book.Price,
		ISBN:        book.ISBN,
		Stock:       book.StockQuantity,
		Category:    book.Category,
		ImageURL:    book.ImageURL,
	}
}

func (s *BookService) AddBook(ctx context.Context, token string, book models.BookRequest) (string, error) {
	var message string
	err := s.api.Do(ctx, http.MethodPost, "/api/books/add", token, newBookPayload(book), &message)
	return message, err
}

func (s *BookService) UpdateBook(ctx context.Context, token, id string, book models.BookRequest) (string, error) {
	var message string
	err := s.api.Do(ctx, http.MethodPut, "/api/books/"+url.PathEscape(id), token, newBookPayload(book), &message)
	return message, err
}

func (s *BookService) DeleteBook(ctx context.Context, token, id string) (string, error) {
	var message string
	err := s.api.Do(ctx, http.MethodDelete, "/api/books/"+url.PathEscape(id), token, nil, &message)
	return message, err
}

// FilterBooks keeps books whose title, author or description contains
// query (case-insensitive) and whose category matches. An empty query or
// the "all" category do not filter.
func FilterBooks(books []models.Book, query, category string) []models.Book {
	query = strings.ToLower(strings.TrimSpace(query))
	filtered := []models.Book{}
	for _, book := range books {
		if query != "" &&
			!strings.Contains(strings.ToLower(book.Title), query) &&
			!strings.Contains(strings.ToLower(book.Author), query) &&
			!strings.Contains(strings.ToLower(book.Description), query) {
			continue
		}
		if category != "" && category != models.CategoryAll && book.Category != category {
			continue
		}
		filtered = append(filtered, book)
	}
	return filtered
}

// Categories lists "all" followed by each distinct category in the order
// first seen.
func Categories(books []models.Book) []string {
	categories := []string{models.CategoryAll}
	seen := map[string]bool{}
	for _, book := range books {
		if !seen[book.Category] {
			seen[book.Category] = true
			categories = append(categories, book.Category)
		}
	}
	return categories
}
