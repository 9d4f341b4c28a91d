package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/repository"
)

// In-memory repository fakes mirroring the Postgres implementations'
// contracts, including pgx.ErrNoRows for misses.

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			profile := user.Profile()
			return &profile, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) UpdatePasswordHash(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	seq    int
	orders []domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	order.ID = fmt.Sprintf("order-%d", r.seq)
	// distinct creation times so newest-first ordering is observable
	order.CreatedAt = time.Unix(int64(r.seq), 0)
	order.UpdatedAt = order.CreatedAt
	r.orders = append(r.orders, *order)
	return nil
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owned := make([]domain.Order, 0)
	for _, order := range r.orders {
		if order.UserID == userID {
			owned = append(owned, order)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

type fakeResetRepo struct {
	mu     sync.Mutex
	seq    int
	tokens map[string]*repository.PasswordResetToken
}

func newFakeResetRepo() *fakeResetRepo {
	return &fakeResetRepo{tokens: make(map[string]*repository.PasswordResetToken)}
}

func (r *fakeResetRepo) Create(_ context.Context, token *repository.PasswordResetToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	token.ID = fmt.Sprintf("reset-%d", r.seq)
	stored := *token
	r.tokens[token.Token] = &stored
	return nil
}

func (r *fakeResetRepo) GetByToken(_ context.Context, tokenStr string) (*repository.PasswordResetToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[tokenStr]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *token
	return &copied, nil
}

func (r *fakeResetRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

func (r *fakeResetRepo) MarkUsed(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, token := range r.tokens {
		if token.ID == id {
			now := time.Now()
			token.UsedAt = &now
			return nil
		}
	}
	return pgx.ErrNoRows
}
