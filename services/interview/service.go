// Package interview implements the question-sequencing core of the mock
// interview: the agenda builder that lays out the session's utterance slots
// and the turn sequencer that decides, each turn, what the interviewer says
// next.
package interview

import (
	"mockinterview/services/llm"
)

type Service struct {
	generator llm.Generator
}

func NewService(generator llm.Generator) *Service {
	return &Service{generator: generator}
}
