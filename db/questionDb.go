package db

import (
	"database/sql"
	"fmt"

	"mockinterview/models"

	_ "github.com/lib/pq"
)

type QuestionRepository interface {
	CreateQuestion(question *models.Question) error
	GetQuestionByID(id int) (*models.Question, error)
	GetAllQuestions() ([]*models.Question, error)
	UpdateQuestion(id int, updates map[string]any) error
	DeleteQuestion(id int) error
	Close() error
}

type PostgresQuestionRepository struct {
	db *sql.DB
}

func NewPostgresQuestionRepository(databaseURL string) (*PostgresQuestionRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresQuestionRepository{db: db}, nil
}

func (r *PostgresQuestionRepository) CreateQuestion(question *models.Question) error {
	query := `
		INSERT INTO interviews.questions (content)
		VALUES ($1)
		RETURNING id, createdAt, updatedAt`

	row := r.db.QueryRow(query, question.Content)

	if err := row.Scan(&question.ID, &question.CreatedAt, &question.UpdatedAt); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	return nil
}

func (r *PostgresQuestionRepository) GetQuestionByID(id int) (*models.Question, error) {
	query := `
		SELECT id, content, createdAt, updatedAt
		FROM interviews.questions
		WHERE id = $1`

	question := &models.Question{}
	row := r.db.QueryRow(query, id)

	err := row.Scan(&question.ID, &question.Content, &question.CreatedAt, &question.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("question with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return question, nil
}

func (r *PostgresQuestionRepository) GetAllQuestions() ([]*models.Question, error) {
	query := `
		SELECT id, content, createdAt, updatedAt
		FROM interviews.questions
		ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := make([]*models.Question, 0)
	for rows.Next() {
		question := &models.Question{}
		err := rows.Scan(&question.ID, &question.Content, &question.CreatedAt, &question.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}

		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over questions: %w", err)
	}

	return questions, nil
}

func (r *PostgresQuestionRepository) UpdateQuestion(id int, updates map[string]any) error {
	content, ok := updates["content"]
	if !ok {
		return fmt.Errorf("no valid updates provided")
	}

	query := `
		UPDATE interviews.questions
		SET content = $1, updatedAt = NOW()
		WHERE id = $2`

	result, err := r.db.Exec(query, content, id)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("question with id %d not found", id)
	}

	return nil
}

func (r *PostgresQuestionRepository) DeleteQuestion(id int) error {
	query := "DELETE FROM interviews.questions WHERE id = $1"

	result, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("question with id %d not found", id)
	}

	return nil
}

func (r *PostgresQuestionRepository) Close() error {
	return r.db.Close()
}
