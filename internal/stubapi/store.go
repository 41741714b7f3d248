package stubapi

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/dto"
	apperrors "fintrack/internal/errors"
)

type userRecord struct {
	user         dto.UserDTO
	passwordHash []byte
}

// userData holds one user's resources in insertion order.
type userData struct {
	accounts      []*dto.AccountDTO
	categories    []*dto.CategoryDTO
	transactions  []*dto.TransactionDTO
	subscriptions []*dto.SubscriptionDTO
	debts         []*dto.DebtDTO
	crypto        []*dto.CryptoHoldingDTO
}

// Store is the stub API's in-memory state. All methods are safe for
// concurrent use; records are copied on the way out.
type Store struct {
	mu       sync.Mutex
	users    map[string]*userRecord
	emails   map[string]string
	sessions map[string]*dto.SessionDTO
	data     map[string]*userData
	now      func() time.Time
	hashCost int
}

// NewStore creates an empty store. now defaults to time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		users:    make(map[string]*userRecord),
		emails:   make(map[string]string),
		sessions: make(map[string]*dto.SessionDTO),
		data:     make(map[string]*userData),
		now:      now,
		hashCost: bcrypt.DefaultCost,
	}
}

// newID returns a time-ordered UUIDv7.
func newID() string { return uuid.Must(uuid.NewV7()).String() }

func (s *Store) userData(userID string) *userData {
	d, ok := s.data[userID]
	if !ok {
		d = &userData{}
		s.data[userID] = d
	}
	return d
}

// CreateUser registers a user with a bcrypt-hashed password.
func (s *Store) CreateUser(email, password, name string) (dto.UserDTO, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return dto.UserDTO{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := s.emails[key]; exists {
		return dto.UserDTO{}, apperrors.ErrDuplicateEmail
	}
	now := s.now().UTC()
	rec := &userRecord{
		user: dto.UserDTO{
			ID:        newID(),
			Email:     email,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: hash,
	}
	s.users[rec.user.ID] = rec
	s.emails[key] = rec.user.ID
	return rec.user, nil
}

// Authenticate checks credentials.
func (s *Store) Authenticate(email, password string) (dto.UserDTO, error) {
	s.mu.Lock()
	rec, ok := s.users[s.emails[strings.ToLower(email)]]
	s.mu.Unlock()
	if !ok {
		return dto.UserDTO{}, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return dto.UserDTO{}, apperrors.ErrInvalidCredentials
	}
	return rec.user, nil
}

// User returns a user by ID.
func (s *Store) User(id string) (dto.UserDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return dto.UserDTO{}, apperrors.ErrNotFound
	}
	return rec.user, nil
}

// OpenSession records a session for token.
func (s *Store) OpenSession(userID, token string, expiresAt time.Time, ip, userAgent string) dto.SessionDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now().UTC()
	sess := &dto.SessionDTO{
		ID:        newID(),
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: now,
		UpdatedAt: now,
		UserID:    userID,
	}
	if ip != "" {
		sess.IPAddress = &ip
	}
	if userAgent != "" {
		sess.UserAgent = &userAgent
	}
	s.sessions[token] = sess
	return *sess
}

// Session returns the live session for token.
func (s *Store) Session(token string) (dto.SessionDTO, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok || !sess.ExpiresAt.After(s.now()) {
		return dto.SessionDTO{}, false
	}
	return *sess, true
}

// SessionActive implements middleware.SessionChecker.
func (s *Store) SessionActive(token string) bool {
	_, ok := s.Session(token)
	return ok
}

// CloseSession forgets token.
func (s *Store) CloseSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func indexByID[T any](items []*T, id string, idOf func(*T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []*T, i int) []*T {
	return append(items[:i], items[i+1:]...)
}
