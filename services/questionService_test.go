package services

import (
	"strings"
	"testing"

	"mockinterview/models"
)

func TestValidateQuestionContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{
			name:    "valid question",
			content: "What motivates you to do your best work?",
			wantErr: false,
		},
		{
			name:    "valid statement prompt",
			content: "Tell me about a time you disagreed with a teammate.",
			wantErr: false,
		},
		{
			name:    "empty content",
			content: "",
			wantErr: true,
		},
		{
			name:    "too short",
			content: "Why?",
			wantErr: true,
		},
		{
			name:    "too long",
			content: strings.Repeat("a", 501) + "?",
			wantErr: true,
		},
		{
			name:    "missing terminator",
			content: "Tell me about your last project",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestionContent(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateQuestionContent(%q) error = %v, wantErr %v", tt.content, err, tt.wantErr)
			}
		})
	}
}

func TestQuestionMatchesTopics(t *testing.T) {
	service := &QuestionService{}

	tests := []struct {
		name     string
		content  string
		topics   []string
		expected bool
	}{
		{
			name:     "exact match",
			content:  "Tell me about a time you handled conflict on your team.",
			topics:   []string{"conflict"},
			expected: true,
		},
		{
			name:     "case insensitive match",
			content:  "Describe your LEADERSHIP style.",
			topics:   []string{"leadership"},
			expected: true,
		},
		{
			name:     "multiple topics - one matches",
			content:  "What motivates you to do your best work?",
			topics:   []string{"teamwork", "motivates"},
			expected: true,
		},
		{
			name:     "multiple topics - none match",
			content:  "What motivates you to do your best work?",
			topics:   []string{"deadline", "relocation"},
			expected: false,
		},
		{
			name:     "punctuation handling",
			content:  "How do you prioritize your work when everything feels urgent?",
			topics:   []string{"prioritize"},
			expected: true,
		},
		{
			name:     "partial word match",
			content:  "Tell me about your experience with mentoring junior engineers.",
			topics:   []string{"mentor"},
			expected: true,
		},
		{
			name:     "no match",
			content:  "Where do you see yourself in five years?",
			topics:   []string{"salary"},
			expected: false,
		},
		{
			name:     "empty topics",
			content:  "Anything at all.",
			topics:   []string{},
			expected: false,
		},
		{
			name:     "empty content",
			content:  "",
			topics:   []string{"teamwork"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question := &models.Question{
				Content: tt.content,
			}

			result := service.questionMatchesTopics(question, tt.topics)
			if result != tt.expected {
				t.Errorf("questionMatchesTopics() = %v, expected %v for question: %q with topics: %v",
					result, tt.expected, tt.content, tt.topics)
			}
		})
	}
}

func BenchmarkQuestionMatchesTopics(b *testing.B) {
	service := &QuestionService{}
	question := &models.Question{
		Content: "Tell me about a time you had to balance conflicting priorities across multiple teams while mentoring junior engineers and keeping stakeholders informed.",
	}
	topics := []string{"priorities", "mentoring", "stakeholders"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		service.questionMatchesTopics(question, topics)
	}
}
