package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/listkeep/backend/internal/model"
)

// Every query below conjoins the row id with user_id. A todo is never
// addressable by id alone, so one user's rows are invisible to another even
// when the id is guessed.

func (db *Postgres) ListTodos(ctx context.Context, userID int64) ([]model.Todo, error) {
	query := `
		SELECT id, user_id, text, completed, created_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Todo
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Todo{}
	}
	return list, nil
}

func (db *Postgres) CreateTodo(ctx context.Context, userID int64, text string) (*model.Todo, error) {
	query := `
		INSERT INTO todos (user_id, text, completed, created_at)
		VALUES ($1, $2, FALSE, NOW())
		RETURNING id, user_id, text, completed, created_at
	`
	var t model.Todo
	err := db.Pool.QueryRow(ctx, query, userID, text).Scan(
		&t.ID,
		&t.UserID,
		&t.Text,
		&t.Completed,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (db *Postgres) SetTodoCompleted(ctx context.Context, todoID, userID int64, completed bool) (*model.Todo, error) {
	query := `
		UPDATE todos
		SET completed = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, text, completed, created_at
	`
	var t model.Todo
	err := db.Pool.QueryRow(ctx, query, completed, todoID, userID).Scan(
		&t.ID,
		&t.UserID,
		&t.Text,
		&t.Completed,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (db *Postgres) DeleteTodo(ctx context.Context, todoID, userID int64) error {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
	`
	tag, err := db.Pool.Exec(ctx, query, todoID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
