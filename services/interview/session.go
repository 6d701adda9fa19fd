package interview

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"mockinterview/models"
)

// ErrInvalidConfig marks a session configuration rejected at construction,
// so transports can tell a caller mistake from a collaborator failure.
var ErrInvalidConfig = errors.New("invalid session configuration")

// SlotKind distinguishes what an agenda slot holds, so follow-up markers can
// never collide with real question text.
type SlotKind int

const (
	// SlotScripted holds a fixed line that has not been spoken yet.
	SlotScripted SlotKind = iota
	// SlotFollowUp marks a position whose utterance must be generated from
	// the previous exchange.
	SlotFollowUp
	// SlotResolved holds the final utterance that was actually spoken.
	SlotResolved
)

type Slot struct {
	Kind SlotKind
	Text string
}

func scriptedSlot(text string) Slot {
	return Slot{Kind: SlotScripted, Text: text}
}

func followUpSlot() Slot {
	return Slot{Kind: SlotFollowUp}
}

// resolve transitions a slot to its final spoken text. The transition is
// one-way: a resolved slot is never recomputed.
func (s *Slot) resolve(text string) error {
	if s.Kind == SlotResolved {
		return fmt.Errorf("slot already resolved")
	}
	s.Kind = SlotResolved
	s.Text = text
	return nil
}

// State of the turn sequencer, derived from the cursor position.
type State int

const (
	StateWarmup State = iota
	StateActive
	StateFinished
)

// warmupTurns is the number of leading scripted turns (opener, layout
// question, introduction) returned verbatim with no collaborator call.
const warmupTurns = 3

// Config carries the construction-time options for a session.
type Config struct {
	// NumRequiredQuestions is the count of bank questions to include.
	// Must not exceed the size of the question bank.
	NumRequiredQuestions int

	// Questions overrides the default question bank when non-empty.
	Questions []string

	Profile models.CandidateProfile

	// Interviewer persona; zero-valued fields take defaults.
	Interviewer models.Interviewer

	// OnComplete is invoked exactly once with the closing feedback when the
	// session transitions to finished.
	OnComplete func(feedback string)
}

// Session is the unit of state for one interview. Callers must not invoke
// Advance concurrently for the same session.
type Session struct {
	profile     models.CandidateProfile
	interviewer models.Interviewer

	agenda            []Slot
	cursor            int
	requiredQuestions int
	bank              []string
	rng               *rand.Rand

	transcript    []models.Message
	lastUtterance string
	onComplete    func(feedback string)
	completed     bool
	built         bool
}

// NewSession validates the configuration, shuffles the question bank exactly
// once, and returns a session ready for agenda building. The random source is
// injected so tests can be deterministic.
func NewSession(cfg Config, rng *rand.Rand) (*Session, error) {
	if cfg.NumRequiredQuestions < 0 {
		return nil, fmt.Errorf("%w: num required questions must not be negative, got %d", ErrInvalidConfig, cfg.NumRequiredQuestions)
	}

	bank := cfg.Questions
	if len(bank) == 0 {
		bank = defaultQuestionBank
	}

	if cfg.NumRequiredQuestions > len(bank) {
		return nil, fmt.Errorf("%w: num required questions %d exceeds question bank size %d", ErrInvalidConfig, cfg.NumRequiredQuestions, len(bank))
	}

	interviewer := cfg.Interviewer
	if interviewer.Name == "" {
		interviewer.Name = "Sasha"
	}
	if interviewer.Age == 0 {
		interviewer.Age = 30
	}
	if interviewer.Voice == "" {
		interviewer.Voice = VoiceNova
	}
	if interviewer.Bio == "" {
		interviewer.Bio = DEFAULT_INTERVIEWER_BIO
	}

	return &Session{
		profile:           cfg.Profile,
		interviewer:       interviewer,
		requiredQuestions: cfg.NumRequiredQuestions,
		bank:              shuffleQuestions(rng, bank),
		rng:               rng,
		onComplete:        cfg.OnComplete,
	}, nil
}

func (sess *Session) Interviewer() models.Interviewer {
	return sess.interviewer
}

func (sess *Session) Cursor() int {
	return sess.cursor
}

func (sess *Session) AgendaLength() int {
	return len(sess.agenda)
}

// State reports where the sequencer currently is.
func (sess *Session) State() State {
	switch {
	case sess.cursor < warmupTurns:
		return StateWarmup
	case sess.cursor < len(sess.agenda):
		return StateActive
	default:
		return StateFinished
	}
}

func (sess *Session) Finished() bool {
	return sess.built && sess.cursor >= len(sess.agenda)
}

// CurrentQuestion returns the question portion of the most recently spoken
// utterance: the last sentence fragment after splitting on sentence
// terminators. If the utterance ends with a terminator, the preceding
// fragment is returned with a period appended.
func (sess *Session) CurrentQuestion() string {
	text := sess.lastUtterance
	if text == "" {
		return ""
	}

	segments := strings.Split(strings.ReplaceAll(text, "!", "."), ".")
	last := segments[len(segments)-1]
	if strings.TrimSpace(last) == "" && len(segments) > 1 {
		return strings.TrimSpace(segments[len(segments)-2]) + "."
	}
	return strings.TrimSpace(last)
}

// interviewerContext renders the persona preamble shared by every prompt.
func (sess *Session) interviewerContext() string {
	return fmt.Sprintf(INTERVIEWER_CONTEXT_PROMPT, sess.interviewer.Name, sess.interviewer.Age, sess.interviewer.Bio)
}

func formatTranscript(messages []models.Message) string {
	var history strings.Builder
	for _, msg := range messages {
		history.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
	}
	return history.String()
}
