package interview

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mockinterview/models"
)

// Advance consumes the previous candidate response and returns the
// interviewer's next line, moving the cursor forward by one. The returned
// text corresponds to the pre-advance cursor position; the cursor only moves
// once the response has been fully computed, so a failed generation leaves
// the session where it was.
func (s *Service) Advance(ctx context.Context, sess *Session, candidateResponse string) (string, error) {
	if !sess.built {
		return "", fmt.Errorf("agenda has not been built")
	}

	if sess.cursor >= len(sess.agenda) {
		return s.finish(ctx, sess, candidateResponse)
	}

	slot := &sess.agenda[sess.cursor]

	var utterance string
	switch {
	case sess.cursor < warmupTurns:
		// Opener, layout question, and introduction are never
		// conversationally adapted; the candidate's response is discarded.
		utterance = slot.Text

	case slot.Kind == SlotFollowUp:
		prompt := fmt.Sprintf(FOLLOW_UP_PROMPT, sess.interviewerContext(), sess.agenda[sess.cursor-1].Text, candidateResponse)
		out, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			log.Printf("[ERROR] Failed to generate follow-up question at turn %d: %v", sess.cursor, err)
			return "", fmt.Errorf("failed to generate follow-up question: %w", err)
		}
		utterance = strings.TrimSpace(out)

	default:
		prompt := fmt.Sprintf(COMMENT_PROMPT, sess.interviewerContext(), sess.agenda[sess.cursor-1].Text, candidateResponse)
		out, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			log.Printf("[ERROR] Failed to generate comment at turn %d: %v", sess.cursor, err)
			return "", fmt.Errorf("failed to generate comment: %w", err)
		}
		utterance = strings.TrimSpace(out) + " " + slot.Text
	}

	if sess.cursor >= warmupTurns {
		sess.transcript = append(sess.transcript, models.Message{Role: "Candidate", Content: candidateResponse})
	}
	sess.transcript = append(sess.transcript, models.Message{Role: "Interviewer", Content: utterance})

	if err := slot.resolve(utterance); err != nil {
		return "", err
	}
	sess.lastUtterance = utterance
	sess.cursor++

	return utterance, nil
}

// finish handles the transition to the terminal state: closing feedback is
// generated and delivered through the completion callback exactly once, and
// the fixed closing line is returned. Further calls return the closing line
// again with no collaborator calls.
func (s *Service) finish(ctx context.Context, sess *Session, candidateResponse string) (string, error) {
	if sess.completed {
		return CLOSING_LINE, nil
	}

	log.Printf("[INFO] Interview agenda exhausted after %d turns, generating closing feedback", sess.cursor)

	// The transcript is extended on a copy so a failed generation commits
	// nothing and the turn can be retried.
	transcript := make([]models.Message, 0, len(sess.transcript)+1)
	transcript = append(transcript, sess.transcript...)
	transcript = append(transcript, models.Message{Role: "Candidate", Content: candidateResponse})

	prompt := fmt.Sprintf(FEEDBACK_PROMPT, sess.interviewerContext(), formatTranscript(transcript))
	feedback, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("[ERROR] Failed to generate closing feedback: %v", err)
		return "", fmt.Errorf("failed to generate closing feedback: %w", err)
	}
	sess.transcript = transcript

	sess.completed = true
	if sess.onComplete != nil {
		sess.onComplete(strings.TrimSpace(feedback))
	}

	return CLOSING_LINE, nil
}
