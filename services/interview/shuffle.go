package interview

import "math/rand"

// shuffleQuestions returns a Fisher-Yates shuffled copy of questions drawn
// from the given source. The input slice is left untouched.
func shuffleQuestions(rng *rand.Rand, questions []string) []string {
	shuffled := make([]string, len(questions))
	copy(shuffled, questions)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}
