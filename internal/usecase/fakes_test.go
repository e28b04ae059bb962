package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/listing-microservice/internal/domain"
	"github.com/listing-microservice/internal/domain/repository"
)

// fakeBackend is a scriptable in-memory ListingBackend.
type fakeBackend struct {
	mu        sync.Mutex
	listings  []domain.Listing
	requests  []domain.BrokerRequest
	fetchErr  error
	createErr error
	updateErr error
	deleteErr error
	decideErr error

	fetchCalls  int
	deleteCalls []int
	decisions   []string
}

func (b *fakeBackend) FetchListings(ctx context.Context) ([]domain.Listing, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fetchCalls++
	if b.fetchErr != nil {
		return nil, b.fetchErr
	}
	out := make([]domain.Listing, len(b.listings))
	copy(out, b.listings)
	return out, nil
}

func (b *fakeBackend) CreateListing(ctx context.Context, form repository.ListingForm) (*domain.Listing, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.createErr != nil {
		return nil, b.createErr
	}
	created := domain.Listing{ID: len(b.listings) + 1, Title: form.Fields["title"]}
	b.listings = append(b.listings, created)
	return &created, nil
}

func (b *fakeBackend) UpdateListing(ctx context.Context, id int, form repository.ListingForm) (*domain.Listing, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.updateErr != nil {
		return nil, b.updateErr
	}
	updated := domain.Listing{ID: id, Title: form.Fields["title"]}
	return &updated, nil
}

func (b *fakeBackend) DeleteListing(ctx context.Context, id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deleteCalls = append(b.deleteCalls, id)
	return b.deleteErr
}

func (b *fakeBackend) FetchBrokerRequests(ctx context.Context) ([]domain.BrokerRequest, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests, nil
}

func (b *fakeBackend) DecideBrokerRequest(ctx context.Context, id int, action, note string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.decideErr != nil {
		return b.decideErr
	}
	b.decisions = append(b.decisions, action)
	return nil
}

// recordingNotifier captures emitted messages in order.
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

// memoryCache is an in-memory CacheRepository.
type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
	getErr error
	setErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: make(map[string][]byte)}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	val, ok := c.values[key]
	if !ok {
		return nil, nil
	}
	return val, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func (c *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.values[key]
	return ok, nil
}
