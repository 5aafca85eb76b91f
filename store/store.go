package store

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/nomad-essentials/storefront/models"
	"github.com/nomad-essentials/storefront/persist"
)

// Snapshot keys in the key-value substrate. There is no envelope and no
// version field; the value under each key is the raw JSON array.
const (
	KeyProducts   = "nomad_products"
	KeyCategories = "nomad_categories"
	KeyBlogs      = "nomad_blogs"
)

// CategoryAll is the synthetic "no filter" pseudo-category. It is never
// persisted; it is prepended whenever category choices are presented.
const CategoryAll = "All"

// IDGenerator produces identifiers for admin-created records. Injected so
// tests can supply deterministic ids.
type IDGenerator interface {
	NewID() string
}

// TimestampIDs generates millisecond-timestamp ids, matching the ids the
// storefront has always produced for admin-created records.
type TimestampIDs struct{}

func (TimestampIDs) NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// Store owns the three storefront collections. Every mutation rewrites all
// three snapshots through the persister; there is no transaction across the
// keys, so a crash between writes can leave them mutually inconsistent.
// That matches the original behavior and is accepted.
type Store struct {
	mu        sync.Mutex
	persister persist.Persister
	ids       IDGenerator
	now       func() time.Time

	products   []models.Product
	categories []string
	blogs      []models.BlogPost
}

// New creates a Store over the given persister. ids and now may be nil, in
// which case timestamp ids and the wall clock are used.
func New(p persist.Persister, ids IDGenerator, now func() time.Time) *Store {
	if ids == nil {
		ids = TimestampIDs{}
	}
	if now == nil {
		now = time.Now
	}
	return &Store{persister: p, ids: ids, now: now}
}

// Load reads the three snapshots. A key that is missing, unreadable, or
// holds unparseable JSON silently falls back to the seed dataset for that
// collection; loading never fails.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !loadSnapshot(ctx, s.persister, KeyProducts, &s.products) {
		s.products = seedProducts()
	}
	if !loadSnapshot(ctx, s.persister, KeyCategories, &s.categories) {
		s.categories = seedCategories()
	}
	if !loadSnapshot(ctx, s.persister, KeyBlogs, &s.blogs) {
		s.blogs = seedBlogs()
	}
}

func loadSnapshot[T any](ctx context.Context, p persist.Persister, key string, dest *T) bool {
	data, err := p.Load(ctx, key)
	if err != nil {
		log.Printf("Failed to load snapshot %s, using seed data: %v", key, err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("Snapshot %s is not valid JSON, using seed data: %v", key, err)
		return false
	}
	return true
}

// persistAll rewrites every snapshot. Write failures are logged and
// swallowed; the in-memory state is already updated and mutations are total.
func (s *Store) persistAll(ctx context.Context) {
	saveSnapshot(ctx, s.persister, KeyProducts, s.products)
	saveSnapshot(ctx, s.persister, KeyCategories, s.categories)
	saveSnapshot(ctx, s.persister, KeyBlogs, s.blogs)
}

func saveSnapshot(ctx context.Context, p persist.Persister, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to encode snapshot %s: %v", key, err)
		return
	}
	if err := p.Save(ctx, key, data); err != nil {
		log.Printf("Failed to save snapshot %s: %v", key, err)
	}
}

// Products returns every product in insertion order.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product(nil), s.products...)
}

// FilterProducts returns the products in the given category, preserving
// insertion order. CategoryAll returns everything. The match is exact and
// case-sensitive, and only stored categories form concrete views: products
// tagged with a deleted category still appear under CategoryAll but their
// old view is empty.
func (s *Store) FilterProducts(category string) []models.Product {
	if category == CategoryAll {
		return s.Products()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	known := false
	for _, c := range s.categories {
		if c == category {
			known = true
			break
		}
	}
	if !known {
		return nil
	}

	var filtered []models.Product
	for _, p := range s.products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Categories returns the category choices with CategoryAll prepended.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{CategoryAll}, s.categories...)
}

// Blogs returns every journal post, newest first.
func (s *Store) Blogs() []models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.BlogPost(nil), s.blogs...)
}

// UpsertProduct replaces the record whose id matches a non-empty p.ID, or
// appends p as a new record under a freshly generated id. The stored
// product is returned.
func (s *Store) UpsertProduct(ctx context.Context, p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID != "" {
		for i, existing := range s.products {
			if existing.ID == p.ID {
				s.products[i] = p
				s.persistAll(ctx)
				return p
			}
		}
	}

	p.ID = s.ids.NewID()
	s.products = append(s.products, p)
	s.persistAll(ctx)
	return p
}

// DeleteProduct removes the product with the given id. No-op if absent.
func (s *Store) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	s.persistAll(ctx)
}

// AddCategory appends a category. Empty names and duplicates are ignored.
func (s *Store) AddCategory(ctx context.Context, name string) {
	if name == "" || name == CategoryAll {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c == name {
			return
		}
	}
	s.categories = append(s.categories, name)
	s.persistAll(ctx)
}

// DeleteCategory removes a category. Products tagged with it are left
// untouched; they keep their category string and simply stop matching any
// concrete category view.
func (s *Store) DeleteCategory(ctx context.Context, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.persistAll(ctx)
}

// AddBlogPost prepends a templated draft post dated today and returns it.
func (s *Store) AddBlogPost(ctx context.Context) models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.BlogPost{
		ID:      s.ids.NewID(),
		Title:   "New Journal Entry",
		Excerpt: "A brief summary of the story...",
		Content: "The full story goes here.",
		Date:    s.now().Format("January 2, 2006"),
		Image:   "https://images.unsplash.com/photo-1441986300917-64674bd600d8?auto=format&fit=crop&q=80&w=800",
	}
	s.blogs = append([]models.BlogPost{post}, s.blogs...)
	s.persistAll(ctx)
	return post
}

// DeleteBlogPost removes the post with the given id. No-op if absent.
func (s *Store) DeleteBlogPost(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.blogs[:0]
	for _, b := range s.blogs {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.blogs = kept
	s.persistAll(ctx)
}
