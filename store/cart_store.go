package store

import (
	"bookmart/models"
	"context"
	"log"
	"sync"
	"time"
)

// DefaultQuantity is used when a caller adds a book without a quantity.
const DefaultQuantity = 1

const persistTimeout = 5 * time.Second

// CartStore holds the cart lines of one browser session. There is at most
// one line per book id. Mutations never fail: the snapshot is written
// after every change and a write error only reaches the error hook.
type CartStore struct {
	mu        sync.Mutex
	items     []models.CartLine
	persister CartPersister
	onError   func(error)
}

// NewCartStore returns an empty cart. A nil persister keeps the cart in
// memory only.
func NewCartStore(persister CartPersister) *CartStore {
	return &CartStore{
		persister: persister,
		onError: func(err error) {
			log.Printf("Failed to persist %s snapshot: %v", KeyCart, err)
		},
	}
}

// OnPersistError replaces the handler for snapshot write failures.
func (s *CartStore) OnPersistError(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onError = fn
}

// Restore replaces the in-memory lines with the persisted snapshot.
func (s *CartStore) Restore(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	snapshot, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]models.CartLine(nil), snapshot.Items...)
	return nil
}

// AddItem increments the line for book.ID by quantity, or appends a new
// line. The quantity is not checked against stock or sign.
func (s *CartStore) AddItem(book models.Book, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.items {
		if s.items[i].Book.ID == book.ID {
			s.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, models.CartLine{Book: book, Quantity: quantity})
	}
	s.persistLocked()
}

func (s *CartStore) RemoveItem(bookID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(bookID)
	s.persistLocked()
}

// UpdateQuantity sets the quantity of an existing line. Zero or less
// removes the line.
func (s *CartStore) UpdateQuantity(bookID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(bookID)
	} else {
		for i := range s.items {
			if s.items[i].Book.ID == bookID {
				s.items[i].Quantity = quantity
				break
			}
		}
	}
	s.persistLocked()
}

func (s *CartStore) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked()
}

// RemoveOrdered takes the ordered quantities off their lines and drops
// lines that reach zero. Lines added after the order was read are kept.
func (s *CartStore) RemoveOrdered(ordered []models.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range ordered {
		for i := range s.items {
			if s.items[i].Book.ID == line.Book.ID {
				s.items[i].Quantity -= line.Quantity
				break
			}
		}
	}
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.persistLocked()
}

// Items returns a copy of the lines in insertion order.
func (s *CartStore) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartLine{}, s.items...)
}

// TotalItems is the sum of line quantities, not the number of lines.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums price * quantity using the price captured on each line.
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		total += item.Book.Price * float64(item.Quantity)
	}
	return total
}

func (s *CartStore) removeLocked(bookID string) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Book.ID != bookID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

func (s *CartStore) persistLocked() {
	if s.persister == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	snapshot := models.CartSnapshot{Items: append([]models.CartLine{}, s.items...)}
	if err := s.persister.Save(ctx, snapshot); err != nil && s.onError != nil {
		s.onError(err)
	}
}
