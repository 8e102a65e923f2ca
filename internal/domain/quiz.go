package domain

// Mistake records a wrongly answered word in the order it occurred.
type Mistake struct {
	Term     string
	Expected TranslationSet
}

// SessionResult summarizes a completed quiz session.
// Correct + len(Mistakes) == Total.
type SessionResult struct {
	DictionaryName string
	Total          int
	Correct        int
	Mistakes       []Mistake
}

// Prompt asks the user to translate Term.
type Prompt struct {
	Term     string
	Position int // 1-based
	Total    int
}

// OutcomeKind tags the variant held by AnswerOutcome.
type OutcomeKind string

const (
	OutcomeNoOp      OutcomeKind = "NOOP"
	OutcomeHint      OutcomeKind = "HINT"
	OutcomeNext      OutcomeKind = "NEXT"
	OutcomeCompleted OutcomeKind = "COMPLETED"
)

func (k OutcomeKind) String() string { return string(k) }

// AnswerOutcome is the engine's reply to a submitted answer.
// Prompt is set for HINT and NEXT, Hint for HINT, Result for COMPLETED.
type AnswerOutcome struct {
	Kind    OutcomeKind
	Prompt  Prompt
	Hint    TranslationSet
	Correct bool
	Result  *SessionResult
}
