package model

import "time"

type Todo struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateTodoRequest struct {
	Text string `json:"text"`
}

// Completed is a pointer so a missing field is distinguishable from false.
type UpdateTodoRequest struct {
	Completed *bool `json:"completed"`
}
