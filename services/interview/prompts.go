package interview

const (
	INTERVIEWER_CONTEXT_PROMPT = `You are %s, a %d-year-old interviewer conducting a mock job interview. %s
Stay in character. Respond with spoken dialogue only - no stage directions, no metadata, no quotation marks.`

	RESUME_QUESTION_PROMPT = `%s

Based on the following resume, ask the candidate one specific question about their past experience. Respond with the question only.

Resume:
%s`

	JOB_QUESTION_PROMPT = `%s

The candidate is applying for the position of %s. Based on the job description below, ask them one question that probes whether they are a good fit for this role. Respond with the question only.

Job description:
%s`

	INTRODUCTION_PROMPT = `%s

Introduce yourself to the candidate%s in one or two sentences and ask them to tell you a little about themselves. Respond with the introduction only.`

	FOLLOW_UP_PROMPT = `%s

You just asked the candidate: "%s"
The candidate answered: "%s"

Ask one short follow-up question that digs deeper into their answer. Respond with the question only.`

	COMMENT_PROMPT = `%s

You just asked the candidate: "%s"
The candidate answered: "%s"

React to their answer with one brief, natural acknowledgment sentence. Do not ask a question. Respond with the sentence only.`

	FEEDBACK_PROMPT = `%s

The interview is over. Based on the transcript below, give the candidate two or three sentences of constructive feedback on how they did. Address the candidate directly.

Transcript:
%s`

	ACKNOWLEDGMENT_PREFIX = "Great. "

	CLOSING_LINE = "Thank you, that's all the questions I have for you today. We'll be in touch soon!"

	DEFAULT_INTERVIEWER_BIO = `You have spent eight years as a hiring manager at a mid-sized technology company and genuinely enjoy helping people practice for interviews. You are warm but professional, and you keep the conversation moving.`
)

// Voice identifiers recognized by the audio layer.
const (
	VoiceNova = "nova"
	VoiceOnyx = "onyx"
)

// layoutQuestions explain the structure of the interview to the candidate.
// One is drawn at random per session for the second warmup turn.
var layoutQuestions = []string{
	"Before we dive in, here's how this will work: I'll ask you a mix of questions about yourself and your experience, and we'll dig into your answers as we go. Does that sound good?",
	"Quick note on format: this is a conversational interview, so I'll ask a question, you answer, and I may follow up before we move on. Ready to get started?",
	"Let me walk you through the plan: we'll start with introductions, then go through a handful of interview questions with some follow-ups in between. Shall we begin?",
}

// defaultQuestionBank is used when the session does not supply its own
// question list and the question store is empty.
var defaultQuestionBank = []string{
	"Tell me about a time you had to deal with a difficult coworker. How did you handle it?",
	"What do you consider your greatest professional strength?",
	"Describe a project you're particularly proud of. What was your role?",
	"Tell me about a time you failed at something. What did you learn?",
	"How do you prioritize your work when everything feels urgent?",
	"Where do you see yourself in five years?",
	"What motivates you to do your best work?",
	"Tell me about a time you had to learn something new under pressure.",
	"How do you handle receiving critical feedback?",
	"Describe a situation where you disagreed with a decision made by your manager.",
	"What kind of work environment helps you thrive?",
	"Tell me about a time you went above and beyond what was asked of you.",
	"How do you approach working with people whose style is very different from yours?",
	"What's the hardest decision you've had to make professionally?",
	"Why are you looking to make a change right now?",
}
