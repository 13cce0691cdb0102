package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-notes-auth/models"
)

// memoryUserRepository is an in-process [UserRepository]. Users are kept in
// insertion order so lookups return the first match.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int64
}

// NewMemoryUserRepository returns an in-memory [UserRepository] pre-filled
// with users. Users without an id are numbered in order.
func NewMemoryUserRepository(users ...models.User) UserRepository {
	repo := &memoryUserRepository{nextID: 1}
	for _, user := range users {
		if user.UserID == 0 {
			user.UserID = repo.nextID
		}
		if user.UserID >= repo.nextID {
			repo.nextID = user.UserID + 1
		}
		repo.users = append(repo.users, user)
	}
	return repo
}

func (m *memoryUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

func (m *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user.UserID = m.nextID
	user.CreatedAt = time.Now().UTC()
	m.nextID++
	m.users = append(m.users, user)

	return user, nil
}
