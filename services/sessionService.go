package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"mockinterview/models"
	"mockinterview/services/interview"

	"github.com/google/uuid"
)

// ErrSessionNotFound marks lookups for sessions that do not exist or were
// deleted.
var ErrSessionNotFound = errors.New("session not found")

// sessionEntry pairs a session with the mutex that serializes its turns.
// Advance both reads and mutates session state, so the transport layer must
// take one turn at a time per session.
type sessionEntry struct {
	mu       sync.Mutex
	session  *interview.Session
	feedback string
}

// SessionService is the in-memory session registry. Sessions live for the
// duration of the process only; finished sessions stay readable until
// deleted.
type SessionService struct {
	interviewService *interview.Service
	questionService  *QuestionService

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

func NewSessionService(interviewService *interview.Service, questionService *QuestionService) *SessionService {
	return &SessionService{
		interviewService: interviewService,
		questionService:  questionService,
		sessions:         make(map[string]*sessionEntry),
	}
}

// CreateSession builds a new interview session, runs the agenda builder, and
// registers the session under a fresh ID.
func (s *SessionService) CreateSession(ctx context.Context, req *models.CreateInterviewRequest) (string, *interview.Session, error) {
	log.Printf("[INFO] Starting session creation with %d required questions", req.NumRequiredQuestions)

	bank := req.Questions
	if len(bank) == 0 && s.questionService != nil {
		stored, err := s.questionService.BankContents()
		if err != nil {
			log.Printf("[ERROR] Failed to load question bank from store, using built-in bank: %v", err)
		} else {
			bank = stored
		}
	}

	cfg := interview.Config{
		NumRequiredQuestions: req.NumRequiredQuestions,
		Questions:            bank,
		Profile: models.CandidateProfile{
			Name:           req.CandidateName,
			Resume:         req.CandidateResume,
			JobTitle:       req.JobTitle,
			JobDescription: req.JobDescription,
		},
	}
	if req.Interviewer != nil {
		cfg.Interviewer = *req.Interviewer
	}

	entry := &sessionEntry{}
	cfg.OnComplete = func(feedback string) {
		// Fires inside Advance, while the entry's turn lock is held.
		entry.feedback = feedback
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session, err := interview.NewSession(cfg, rng)
	if err != nil {
		log.Printf("[ERROR] Session configuration rejected: %v", err)
		return "", nil, err
	}

	if err := s.interviewService.BuildAgenda(ctx, session); err != nil {
		log.Printf("[ERROR] Failed to build agenda: %v", err)
		return "", nil, fmt.Errorf("failed to build agenda: %w", err)
	}

	entry.session = session
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = entry
	s.mu.Unlock()

	log.Printf("[INFO] Successfully created session %s with %d agenda slots", id, session.AgendaLength())
	return id, session, nil
}

// Advance runs one turn for the given session. Turns for the same session
// are serialized here, honoring the sequencer's single-caller contract.
func (s *SessionService) Advance(ctx context.Context, id string, candidateResponse string) (string, *models.InterviewStatus, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return "", nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	utterance, err := s.interviewService.Advance(ctx, entry.session, candidateResponse)
	if err != nil {
		return "", nil, err
	}

	return utterance, statusLocked(id, entry), nil
}

// CurrentQuestion returns the question portion of the session's most recent
// utterance.
func (s *SessionService) CurrentQuestion(id string) (string, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return "", err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return entry.session.CurrentQuestion(), nil
}

func (s *SessionService) GetStatus(id string) (*models.InterviewStatus, error) {
	entry, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	return statusLocked(id, entry), nil
}

func (s *SessionService) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}

	delete(s.sessions, id)
	log.Printf("[INFO] Deleted session %s", id)
	return nil
}

func (s *SessionService) lookup(id string) (*sessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	return entry, nil
}

func statusLocked(id string, entry *sessionEntry) *models.InterviewStatus {
	return &models.InterviewStatus{
		ID:         id,
		Cursor:     entry.session.Cursor(),
		TotalSlots: entry.session.AgendaLength(),
		Finished:   entry.session.Finished(),
		Feedback:   entry.feedback,
	}
}
