package models

import "time"

type Question struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateQuestionRequest struct {
	Content string `json:"content"`
}

type UpdateQuestionRequest struct {
	Content *string `json:"content"`
}
