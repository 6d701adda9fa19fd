package interview

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestInterviewEndToEnd(t *testing.T) {
	generator := &fakeGenerator{}
	service := NewService(generator)

	var feedbacks []string
	sess := newTestSession(t, Config{
		NumRequiredQuestions: 1,
		Questions:            []string{"What motivates you?"},
		OnComplete: func(feedback string) {
			feedbacks = append(feedbacks, feedback)
		},
	})

	ctx := context.Background()
	if err := service.BuildAgenda(ctx, sess); err != nil {
		t.Fatalf("BuildAgenda failed: %v", err)
	}
	if sess.AgendaLength() != 6 {
		t.Fatalf("agenda length = %d, expected 6", sess.AgendaLength())
	}

	buildCalls := generator.callCount()

	// Warmup: the first three turns return the scripted slots verbatim and
	// issue no collaborator calls, whatever the candidate says.
	for turn := 0; turn < 3; turn++ {
		want := sess.agenda[turn].Text
		got, err := service.Advance(ctx, sess, fmt.Sprintf("warmup response %d", turn))
		if err != nil {
			t.Fatalf("warmup turn %d failed: %v", turn, err)
		}
		if got != want {
			t.Errorf("warmup turn %d = %q, expected %q", turn, got, want)
		}
		if sess.Cursor() != turn+1 {
			t.Errorf("cursor after turn %d = %d, expected %d", turn, sess.Cursor(), turn+1)
		}
	}
	if generator.callCount() != buildCalls {
		t.Errorf("warmup turns issued %d collaborator calls, expected 0", generator.callCount()-buildCalls)
	}

	// Turn 3: follow-up slot, the raw generated question is returned.
	got, err := service.Advance(ctx, sess, "I told you about myself.")
	if err != nil {
		t.Fatalf("follow-up turn failed: %v", err)
	}
	if got != "Can you expand on that a bit?" {
		t.Errorf("follow-up turn = %q, expected the raw generated question", got)
	}

	// Turn 4: scripted bank question, comment prefixed.
	got, err = service.Advance(ctx, sess, "Mostly my teammates.")
	if err != nil {
		t.Fatalf("bank question turn failed: %v", err)
	}
	if got != "That makes a lot of sense. What motivates you?" {
		t.Errorf("bank question turn = %q, expected comment + question", got)
	}

	// Turn 5: trailing follow-up slot.
	got, err = service.Advance(ctx, sess, "Seeing things ship.")
	if err != nil {
		t.Fatalf("trailing follow-up failed: %v", err)
	}
	if got != "Can you expand on that a bit?" {
		t.Errorf("trailing follow-up = %q", got)
	}

	// Turn 6: agenda exhausted, closing line returned and feedback delivered
	// exactly once.
	got, err = service.Advance(ctx, sess, "The team celebration afterwards.")
	if err != nil {
		t.Fatalf("closing turn failed: %v", err)
	}
	if got != CLOSING_LINE {
		t.Errorf("closing turn = %q, expected the fixed closing line", got)
	}
	if len(feedbacks) != 1 {
		t.Fatalf("completion callback fired %d times, expected 1", len(feedbacks))
	}
	if feedbacks[0] != "You gave clear, structured answers throughout." {
		t.Errorf("feedback = %q", feedbacks[0])
	}
	if !sess.Finished() {
		t.Error("session should report finished")
	}

	// Post-termination calls stay stable: same closing line, no new
	// collaborator calls, callback not re-fired.
	callsAfterFinish := generator.callCount()
	got, err = service.Advance(ctx, sess, "anything")
	if err != nil {
		t.Fatalf("post-termination advance failed: %v", err)
	}
	if got != CLOSING_LINE {
		t.Errorf("post-termination advance = %q, expected the closing line", got)
	}
	if generator.callCount() != callsAfterFinish {
		t.Error("post-termination advance should not call the collaborator")
	}
	if len(feedbacks) != 1 {
		t.Errorf("completion callback re-fired, got %d invocations", len(feedbacks))
	}
	if sess.Cursor() != sess.AgendaLength() {
		t.Errorf("cursor = %d, should never exceed agenda length %d", sess.Cursor(), sess.AgendaLength())
	}
}

func TestAdvanceWarmupDiscardsCandidateInput(t *testing.T) {
	generator := &fakeGenerator{}
	service := NewService(generator)
	sess := newTestSession(t, Config{NumRequiredQuestions: 1})

	ctx := context.Background()
	if err := service.BuildAgenda(ctx, sess); err != nil {
		t.Fatalf("BuildAgenda failed: %v", err)
	}

	for turn := 0; turn < 3; turn++ {
		if _, err := service.Advance(ctx, sess, "SENTINEL-RESPONSE"); err != nil {
			t.Fatalf("warmup turn %d failed: %v", turn, err)
		}
	}

	// The follow-up after warmup may use the previous line but never the
	// warmup responses.
	if _, err := service.Advance(ctx, sess, "a real answer"); err != nil {
		t.Fatalf("follow-up turn failed: %v", err)
	}

	for _, prompt := range generator.prompts {
		if strings.Contains(prompt, "SENTINEL-RESPONSE") {
			t.Fatal("warmup candidate responses must not appear in any prompt")
		}
	}
}

func TestAdvanceBeforeBuildRejected(t *testing.T) {
	service := NewService(&fakeGenerator{})
	sess := newTestSession(t, Config{NumRequiredQuestions: 1})

	if _, err := service.Advance(context.Background(), sess, "hello"); err == nil {
		t.Fatal("Advance before BuildAgenda should fail")
	}
}

func TestAdvanceGenerationFailureLeavesCursor(t *testing.T) {
	fail := false
	generator := &fakeGenerator{
		respond: func(prompt string) (string, error) {
			if fail {
				return "", fmt.Errorf("model unavailable")
			}
			return cannedResponse(prompt), nil
		},
	}
	service := NewService(generator)
	sess := newTestSession(t, Config{NumRequiredQuestions: 1})

	ctx := context.Background()
	if err := service.BuildAgenda(ctx, sess); err != nil {
		t.Fatalf("BuildAgenda failed: %v", err)
	}

	for turn := 0; turn < 3; turn++ {
		if _, err := service.Advance(ctx, sess, "ok"); err != nil {
			t.Fatalf("warmup turn %d failed: %v", turn, err)
		}
	}

	fail = true
	if _, err := service.Advance(ctx, sess, "an answer"); err == nil {
		t.Fatal("Advance should propagate the generation failure")
	}
	if sess.Cursor() != 3 {
		t.Errorf("cursor advanced to %d on a failed turn, expected 3", sess.Cursor())
	}

	// The same turn can be retried once the collaborator recovers.
	fail = false
	if _, err := service.Advance(ctx, sess, "an answer"); err != nil {
		t.Fatalf("retried turn failed: %v", err)
	}
	if sess.Cursor() != 4 {
		t.Errorf("cursor = %d after retry, expected 4", sess.Cursor())
	}
}

func TestCurrentQuestion(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		expected  string
	}{
		{
			name:      "compound comment and question",
			utterance: "Nice answer! What motivates you?",
			expected:  "What motivates you?",
		},
		{
			name:      "plain question",
			utterance: "Where do you see yourself in five years?",
			expected:  "Where do you see yourself in five years?",
		},
		{
			name:      "trailing period falls back to prior segment",
			utterance: "Let's talk about your experience. Sounds good.",
			expected:  "Sounds good.",
		},
		{
			name:      "trailing exclamation",
			utterance: "Welcome aboard!",
			expected:  "Welcome aboard.",
		},
		{
			name:      "multiple sentences",
			utterance: "Great point. I like that. Can you give an example?",
			expected:  "Can you give an example?",
		},
		{
			name:      "empty",
			utterance: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newTestSession(t, Config{NumRequiredQuestions: 0})
			sess.lastUtterance = tt.utterance

			if got := sess.CurrentQuestion(); got != tt.expected {
				t.Errorf("CurrentQuestion() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSlotResolveIsOneWay(t *testing.T) {
	slot := followUpSlot()

	if err := slot.resolve("a generated question?"); err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	if slot.Kind != SlotResolved || slot.Text != "a generated question?" {
		t.Fatalf("slot not resolved as expected: %+v", slot)
	}

	if err := slot.resolve("another"); err == nil {
		t.Fatal("second resolve should fail")
	}
	if slot.Text != "a generated question?" {
		t.Errorf("resolved text was recomputed to %q", slot.Text)
	}
}

func TestSessionStates(t *testing.T) {
	service := NewService(&fakeGenerator{})
	sess := newTestSession(t, Config{NumRequiredQuestions: 0})

	ctx := context.Background()
	if err := service.BuildAgenda(ctx, sess); err != nil {
		t.Fatalf("BuildAgenda failed: %v", err)
	}

	if sess.State() != StateWarmup {
		t.Errorf("state at cursor 0 = %d, expected warmup", sess.State())
	}

	for turn := 0; turn < 3; turn++ {
		if _, err := service.Advance(ctx, sess, "ok"); err != nil {
			t.Fatalf("turn %d failed: %v", turn, err)
		}
	}

	if sess.State() != StateActive {
		t.Errorf("state at cursor 3 = %d, expected active", sess.State())
	}

	if _, err := service.Advance(ctx, sess, "ok"); err != nil {
		t.Fatalf("final agenda turn failed: %v", err)
	}
	if sess.State() != StateFinished {
		t.Errorf("state at agenda end = %d, expected finished", sess.State())
	}
}
