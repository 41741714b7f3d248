package testutil

import (
	"context"
	"fmt"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/dto"
	"fintrack/internal/logger"
	"fintrack/internal/session"
	"fintrack/internal/stubapi"
	"fintrack/internal/transport"
)

// TestPassword is the password every fixture user signs up with.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// UniqueEmail returns an email address not used by any other fixture.
func UniqueEmail() string {
	return fmt.Sprintf("user%d@test.com", nextID())
}

// MemorySecrets is an in-memory session.SecretStore.
type MemorySecrets struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemorySecrets() *MemorySecrets {
	return &MemorySecrets{values: make(map[string]string)}
}

func (m *MemorySecrets) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemorySecrets) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", session.ErrNotFound
	}
	return v, nil
}

func (m *MemorySecrets) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// StubAPI is a running stub API with a client pointed at it.
type StubAPI struct {
	Server *httptest.Server
	Stub   *stubapi.Server
	Client *transport.Client
	Tokens *session.TokenStorage
}

// NewStubAPI starts a stub API server for the duration of the test. opts may
// adjust the server options before it starts.
func NewStubAPI(t *testing.T, opts ...func(*stubapi.Options)) *StubAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init("test")

	options := stubapi.Options{
		JWTSecret: "test-secret",
		HashCost:  bcrypt.MinCost,
	}
	for _, opt := range opts {
		opt(&options)
	}

	stub := stubapi.New(options)
	server := httptest.NewServer(stub.Handler())
	t.Cleanup(server.Close)

	tokens := session.NewTokenStorage(NewMemorySecrets())
	client := transport.NewClient(transport.Options{
		BaseURL:  server.URL + "/api",
		Platform: "fintrack-test",
		Tokens:   tokens,
	})
	return &StubAPI{Server: server, Stub: stub, Client: client, Tokens: tokens}
}

// SignUp registers a fresh user and stores its token so later requests are
// authenticated.
func (a *StubAPI) SignUp(t *testing.T) dto.UserDTO {
	t.Helper()

	var resp dto.AuthResponse
	err := a.Client.Post(context.Background(), "auth/sign-up/email", dto.SignUpRequest{
		Email:    UniqueEmail(),
		Password: TestPassword,
		Name:     "Test User",
	}, &resp)
	if err != nil {
		t.Fatalf("failed to sign up test user: %v", err)
	}
	a.Tokens.Save(resp.Token)
	return resp.User
}

// CreateAccount creates a checking account with the given balance.
func (a *StubAPI) CreateAccount(t *testing.T, name string, balance int64) dto.AccountDTO {
	t.Helper()

	var account dto.AccountDTO
	err := a.Client.Post(context.Background(), "accounts", dto.CreateAccountRequest{
		Name:     name,
		Type:     "CHECKING",
		Balance:  decimal.NewFromInt(balance),
		Currency: "MXN",
	}, &account)
	if err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateCategory creates a category of the given type.
func (a *StubAPI) CreateCategory(t *testing.T, name, categoryType string) dto.CategoryDTO {
	t.Helper()

	var category dto.CategoryDTO
	err := a.Client.Post(context.Background(), "categories", dto.CreateCategoryRequest{
		Name: name,
		Type: categoryType,
	}, &category)
	if err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}
