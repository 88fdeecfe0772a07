package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/listkeep/backend/internal/db"
	"github.com/listkeep/backend/internal/model"
)

const maxTodoTextLength = 500

type TodoRepo interface {
	ListTodos(ctx context.Context, userID int64) ([]model.Todo, error)
	CreateTodo(ctx context.Context, userID int64, text string) (*model.Todo, error)
	SetTodoCompleted(ctx context.Context, todoID, userID int64, completed bool) (*model.Todo, error)
	DeleteTodo(ctx context.Context, todoID, userID int64) error
}

// TodoService scopes every operation to the caller bound by the auth
// middleware. A missing row and a row owned by someone else are the same
// outcome (ErrNotFound) so existence is never confirmed to a non-owner.
type TodoService struct {
	repo TodoRepo
}

func NewTodoService(repo TodoRepo) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) List(ctx context.Context, caller *model.AuthUser) ([]model.Todo, error) {
	return s.repo.ListTodos(ctx, caller.ID)
}

func (s *TodoService) Create(ctx context.Context, caller *model.AuthUser, text string) (*model.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text must not be empty", ErrInvalidInput)
	}
	if utf8.RuneCountInString(text) > maxTodoTextLength {
		return nil, fmt.Errorf("%w: text must be at most %d characters", ErrInvalidInput, maxTodoTextLength)
	}
	return s.repo.CreateTodo(ctx, caller.ID, text)
}

func (s *TodoService) SetCompleted(ctx context.Context, caller *model.AuthUser, todoID int64, completed bool) (*model.Todo, error) {
	todo, err := s.repo.SetTodoCompleted(ctx, todoID, caller.ID, completed)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Delete(ctx context.Context, caller *model.AuthUser, todoID int64) error {
	if err := s.repo.DeleteTodo(ctx, todoID, caller.ID); err != nil {
		if db.IsNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
