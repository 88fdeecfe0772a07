package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/listkeep/backend/internal/config"
	"github.com/listkeep/backend/internal/model"
	"github.com/listkeep/backend/internal/service"
	"github.com/rs/zerolog"
)

type fakeUserRepo struct {
	users  map[string]*model.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, email, passwordHash string) (*model.User, error) {
	if _, ok := f.users[email]; ok {
		return nil, &pgconn.PgError{Code: "23505"}
	}
	f.nextID++
	u := &model.User{ID: f.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	f.users[email] = u
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

// fakeTodoRepo lists newest-first (descending id) like the real query.
type fakeTodoRepo struct {
	todos  []*model.Todo
	nextID int64
}

func (f *fakeTodoRepo) ListTodos(ctx context.Context, userID int64) ([]model.Todo, error) {
	list := []model.Todo{}
	for i := len(f.todos) - 1; i >= 0; i-- {
		if f.todos[i].UserID == userID {
			list = append(list, *f.todos[i])
		}
	}
	return list, nil
}

func (f *fakeTodoRepo) CreateTodo(ctx context.Context, userID int64, text string) (*model.Todo, error) {
	f.nextID++
	t := &model.Todo{ID: f.nextID, UserID: userID, Text: text, CreatedAt: time.Now()}
	f.todos = append(f.todos, t)
	return t, nil
}

func (f *fakeTodoRepo) SetTodoCompleted(ctx context.Context, todoID, userID int64, completed bool) (*model.Todo, error) {
	for _, t := range f.todos {
		if t.ID == todoID && t.UserID == userID {
			t.Completed = completed
			out := *t
			return &out, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTodoRepo) DeleteTodo(ctx context.Context, todoID, userID int64) error {
	for i, t := range f.todos {
		if t.ID == todoID && t.UserID == userID {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type testEnv struct {
	router   *gin.Engine
	userRepo *fakeUserRepo
	todoRepo *fakeTodoRepo
	authSvc  *service.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := newFakeUserRepo()
	todoRepo := &fakeTodoRepo{}

	authSvc, err := service.NewAuthService(userRepo, config.AuthConfig{
		JWTSecret:  "handler-test-secret",
		TokenTTL:   "168h",
		BcryptCost: "4",
	})
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}
	todoSvc := service.NewTodoService(todoRepo)

	router := NewRouter(zerolog.Nop(), config.HTTPConfig{}, nil, authSvc, todoSvc)
	return &testEnv{router: router, userRepo: userRepo, todoRepo: todoRepo, authSvc: authSvc}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doWithAuthHeader sends a request with a raw Authorization header value.
func (e *testEnv) doWithAuthHeader(t *testing.T, method, path, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", header)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) register(t *testing.T, email, password string) (*model.User, string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/auth/register", "", `{"email":"`+email+`","password":"`+password+`"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("register %s: expected 200, got %d (%s)", email, w.Code, w.Body.String())
	}
	var env struct {
		Data model.AuthPayload `json:"data"`
	}
	decodeJSON(t, w, &env)
	if env.Data.User == nil || env.Data.Token == "" {
		t.Fatalf("register %s: missing user or token in %s", email, w.Body.String())
	}
	return env.Data.User, env.Data.Token
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}
