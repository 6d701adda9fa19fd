package services

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"mockinterview/db"
	"mockinterview/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

const (
	minQuestionLength = 10
	maxQuestionLength = 500
)

type QuestionService struct {
	repo db.QuestionRepository
}

func NewQuestionService(repo db.QuestionRepository) *QuestionService {
	return &QuestionService{repo: repo}
}

func (s *QuestionService) CreateQuestion(req *models.CreateQuestionRequest) (*models.Question, error) {
	log.Printf("[INFO] Starting question creation")

	if err := s.validateCreateRequest(req); err != nil {
		log.Printf("[ERROR] Question creation validation failed: %v", err)
		return nil, err
	}

	question := &models.Question{
		Content: strings.TrimSpace(req.Content),
	}

	if err := s.repo.CreateQuestion(question); err != nil {
		log.Printf("[ERROR] Failed to create question in repository: %v", err)
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	log.Printf("[INFO] Successfully created question with ID %d", question.ID)
	return question, nil
}

func (s *QuestionService) GetQuestionByID(id int) (*models.Question, error) {
	log.Printf("[INFO] Starting get question by ID %d", id)

	if id <= 0 {
		log.Printf("[ERROR] Invalid question ID provided: %d", id)
		return nil, fmt.Errorf("invalid question ID: %d", id)
	}

	question, err := s.repo.GetQuestionByID(id)
	if err != nil {
		log.Printf("[ERROR] Failed to get question by ID %d: %v", id, err)
		return nil, err
	}

	log.Printf("[INFO] Successfully retrieved question with ID %d", id)
	return question, nil
}

func (s *QuestionService) GetAllQuestions() ([]*models.Question, error) {
	log.Printf("[INFO] Starting get all questions")

	questions, err := s.repo.GetAllQuestions()
	if err != nil {
		log.Printf("[ERROR] Failed to get all questions: %v", err)
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	log.Printf("[INFO] Successfully retrieved %d questions", len(questions))
	return questions, nil
}

// BankContents returns the stored question texts in bank order, for sessions
// that do not supply their own question list.
func (s *QuestionService) BankContents() ([]string, error) {
	questions, err := s.GetAllQuestions()
	if err != nil {
		return nil, err
	}

	return lo.Map(questions, func(question *models.Question, _ int) string {
		return question.Content
	}), nil
}

func (s *QuestionService) UpdateQuestion(id int, req *models.UpdateQuestionRequest) (*models.Question, error) {
	log.Printf("[INFO] Starting update question with ID %d", id)

	if id <= 0 {
		log.Printf("[ERROR] Invalid question ID provided for update: %d", id)
		return nil, fmt.Errorf("invalid question ID: %d", id)
	}

	if req == nil || req.Content == nil {
		log.Printf("[ERROR] No valid updates provided for question ID %d", id)
		return nil, fmt.Errorf("at least one field must be provided for update")
	}

	trimmedContent := strings.TrimSpace(*req.Content)
	if err := validateQuestionContent(trimmedContent); err != nil {
		log.Printf("[ERROR] Invalid content provided for question ID %d: %v", id, err)
		return nil, err
	}

	updates := map[string]any{"content": trimmedContent}

	if err := s.repo.UpdateQuestion(id, updates); err != nil {
		log.Printf("[ERROR] Failed to update question ID %d in repository: %v", id, err)
		return nil, err
	}

	log.Printf("[INFO] Successfully updated question with ID %d", id)
	return s.repo.GetQuestionByID(id)
}

func (s *QuestionService) DeleteQuestion(id int) error {
	log.Printf("[INFO] Starting delete question with ID %d", id)

	if id <= 0 {
		log.Printf("[ERROR] Invalid question ID provided for deletion: %d", id)
		return fmt.Errorf("invalid question ID: %d", id)
	}

	if err := s.repo.DeleteQuestion(id); err != nil {
		log.Printf("[ERROR] Failed to delete question ID %d: %v", id, err)
		return err
	}

	log.Printf("[INFO] Successfully deleted question with ID %d", id)
	return nil
}

func (s *QuestionService) validateCreateRequest(req *models.CreateQuestionRequest) error {
	if req == nil {
		return fmt.Errorf("request cannot be nil")
	}

	return validateQuestionContent(strings.TrimSpace(req.Content))
}

// validateQuestionContent checks that content reads like something an
// interviewer could ask: a question, or a prompt such as "Tell me about a
// time you disagreed with a teammate."
func validateQuestionContent(content string) error {
	if content == "" {
		return fmt.Errorf("content is required")
	}

	length := utf8.RuneCountInString(content)
	if length < minQuestionLength {
		return fmt.Errorf("content must be at least %d characters, got %d", minQuestionLength, length)
	}
	if length > maxQuestionLength {
		return fmt.Errorf("content must be at most %d characters, got %d", maxQuestionLength, length)
	}

	if !strings.HasSuffix(content, "?") && !strings.HasSuffix(content, ".") {
		return fmt.Errorf("content must end with a question mark or a period")
	}

	return nil
}

func (s *QuestionService) SearchQuestionsByTopics(topics []string) ([]*models.Question, error) {
	log.Printf("[INFO] Starting question search with %d topics", len(topics))

	questions, err := s.GetAllQuestions()
	if err != nil {
		return nil, fmt.Errorf("failed to get questions for search: %w", err)
	}

	if len(topics) == 0 {
		log.Printf("[INFO] No topics provided, returning all %d questions", len(questions))
		return questions, nil
	}

	matching := lo.Filter(questions, func(question *models.Question, _ int) bool {
		return s.questionMatchesTopics(question, topics)
	})

	log.Printf("[INFO] Found %d questions matching search criteria", len(matching))
	return matching, nil
}

func (s *QuestionService) questionMatchesTopics(question *models.Question, topics []string) bool {
	content := question.Content
	words := strings.Fields(strings.ToLower(content))

	for _, topic := range topics {
		if fuzzy.MatchFold(topic, content) {
			return true
		}

		cleanWords := make([]string, 0, len(words))
		for _, word := range words {
			cleanWord := strings.Trim(word, ".,!?;:()[]{}\"'")
			if len(cleanWord) > 0 {
				cleanWords = append(cleanWords, cleanWord)
			}
		}

		if matches := fuzzy.Find(topic, cleanWords); len(matches) > 0 {
			return true
		}
	}

	return false
}
