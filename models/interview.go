package models

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CandidateProfile carries the optional candidate inputs that flavor
// generated content. Empty fields are simply skipped during agenda building.
type CandidateProfile struct {
	Name           string `json:"name,omitempty"`
	Resume         string `json:"resume,omitempty"`
	JobTitle       string `json:"job_title,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
}

// Interviewer is the simulated interviewer persona. Immutable for the
// lifetime of a session.
type Interviewer struct {
	Name  string `json:"name"`
	Age   int    `json:"age"`
	Voice string `json:"voice"`
	Bio   string `json:"bio"`
}

type CreateInterviewRequest struct {
	NumRequiredQuestions int          `json:"num_required_questions"`
	Questions            []string     `json:"questions,omitempty"`
	CandidateName        string       `json:"candidate_name,omitempty"`
	CandidateResume      string       `json:"candidate_resume,omitempty"`
	JobTitle             string       `json:"job_title,omitempty"`
	JobDescription       string       `json:"job_description,omitempty"`
	Interviewer          *Interviewer `json:"interviewer,omitempty"`
}

type InterviewStatus struct {
	ID         string `json:"id"`
	Cursor     int    `json:"cursor"`
	TotalSlots int    `json:"total_slots"`
	Finished   bool   `json:"finished"`
	Feedback   string `json:"feedback,omitempty"`
}
