package interview

import (
	"math/rand"
	"sort"
	"testing"
)

func TestShuffleQuestionsIsPermutation(t *testing.T) {
	questions := []string{"a", "b", "c", "d", "e", "f", "g", "a"}

	shuffled := shuffleQuestions(rand.New(rand.NewSource(42)), questions)

	if len(shuffled) != len(questions) {
		t.Fatalf("expected %d questions after shuffle, got %d", len(questions), len(shuffled))
	}

	wantSorted := append([]string(nil), questions...)
	gotSorted := append([]string(nil), shuffled...)
	sort.Strings(wantSorted)
	sort.Strings(gotSorted)

	for i := range wantSorted {
		if gotSorted[i] != wantSorted[i] {
			t.Errorf("shuffle is not a permutation: got %v, want multiset of %v", shuffled, questions)
			return
		}
	}
}

func TestShuffleQuestionsLeavesInputUntouched(t *testing.T) {
	questions := []string{"first", "second", "third", "fourth"}
	original := append([]string(nil), questions...)

	shuffleQuestions(rand.New(rand.NewSource(7)), questions)

	for i := range original {
		if questions[i] != original[i] {
			t.Fatalf("input slice mutated at index %d: got %q, want %q", i, questions[i], original[i])
		}
	}
}

func TestShuffleQuestionsDeterministicForSeed(t *testing.T) {
	questions := []string{"a", "b", "c", "d", "e"}

	first := shuffleQuestions(rand.New(rand.NewSource(99)), questions)
	second := shuffleQuestions(rand.New(rand.NewSource(99)), questions)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", first, second)
		}
	}
}
