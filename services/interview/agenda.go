package interview

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"
)

// BuildAgenda populates the session's agenda. Callable exactly once per
// session, before any turn is advanced. The resume, job, and introduction
// generations are independent and run concurrently; a failure in any of them
// aborts the build with no agenda committed.
func (s *Service) BuildAgenda(ctx context.Context, sess *Session) error {
	if sess.built {
		return fmt.Errorf("agenda already built")
	}

	log.Printf("[INFO] Building interview agenda with %d required questions", sess.requiredQuestions)

	var resumeQuestion, jobQuestion, introduction string

	g, gctx := errgroup.WithContext(ctx)

	if sess.profile.Resume != "" {
		g.Go(func() error {
			prompt := fmt.Sprintf(RESUME_QUESTION_PROMPT, sess.interviewerContext(), sess.profile.Resume)
			out, err := s.generator.Generate(gctx, prompt)
			if err != nil {
				return fmt.Errorf("failed to generate resume question: %w", err)
			}
			resumeQuestion = strings.TrimSpace(out)
			return nil
		})
	}

	if sess.profile.JobTitle != "" && sess.profile.JobDescription != "" {
		g.Go(func() error {
			prompt := fmt.Sprintf(JOB_QUESTION_PROMPT, sess.interviewerContext(), sess.profile.JobTitle, sess.profile.JobDescription)
			out, err := s.generator.Generate(gctx, prompt)
			if err != nil {
				return fmt.Errorf("failed to generate job question: %w", err)
			}
			jobQuestion = strings.TrimSpace(out)
			return nil
		})
	}

	g.Go(func() error {
		prompt := fmt.Sprintf(INTRODUCTION_PROMPT, sess.interviewerContext(), nameClause(sess.profile.Name))
		out, err := s.generator.Generate(gctx, prompt)
		if err != nil {
			return fmt.Errorf("failed to generate introduction: %w", err)
		}
		introduction = ACKNOWLEDGMENT_PREFIX + strings.TrimSpace(out)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("[ERROR] Agenda build failed: %v", err)
		return err
	}

	agenda := make([]Slot, 0, warmupTurns+3+2*sess.requiredQuestions)
	agenda = append(agenda,
		scriptedSlot(openerLine(sess.profile.Name)),
		scriptedSlot(layoutQuestions[sess.rng.Intn(len(layoutQuestions))]),
		scriptedSlot(introduction),
		followUpSlot(),
	)

	if jobQuestion != "" {
		agenda = append(agenda, scriptedSlot(jobQuestion))
	}
	if resumeQuestion != "" {
		agenda = append(agenda, scriptedSlot(resumeQuestion))
	}

	for _, question := range sess.bank[:sess.requiredQuestions] {
		agenda = append(agenda, scriptedSlot(question), followUpSlot())
	}

	sess.agenda = agenda
	sess.built = true

	log.Printf("[INFO] Successfully built agenda with %d slots", len(agenda))
	return nil
}

func openerLine(candidateName string) string {
	if candidateName != "" {
		return fmt.Sprintf("Hi %s! Thanks for joining me today, I'm looking forward to our conversation.", candidateName)
	}
	return "Hi! Thanks for joining me today, I'm looking forward to our conversation."
}

func nameClause(candidateName string) string {
	if candidateName != "" {
		return fmt.Sprintf(", whose name is %s,", candidateName)
	}
	return ""
}
