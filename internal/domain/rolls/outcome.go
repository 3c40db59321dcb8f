package rolls

// Result is the narrative tier of a resolved move
type Result string

const (
	ResultCriticalSuccess Result = "criticalSuccess"
	ResultCriticalFailure Result = "criticalFailure"
	ResultFullSuccess     Result = "fullSuccess"
	ResultPartialSuccess  Result = "partialSuccess"
	ResultFailure         Result = "failure"
)

var resultLabels = map[Result]string{
	ResultCriticalSuccess: "Sucesso Crítico",
	ResultCriticalFailure: "Falha Crítica",
	ResultFullSuccess:     "Sucesso Total",
	ResultPartialSuccess:  "Sucesso Parcial",
	ResultFailure:         "Falha",
}

// Label is the chat label of the result
func (r Result) Label() string {
	if l, ok := resultLabels[r]; ok {
		return l
	}
	return string(r)
}

// IsSuccess reports whether the move went the player's way
func (r Result) IsSuccess() bool {
	return r == ResultCriticalSuccess || r == ResultFullSuccess || r == ResultPartialSuccess
}

// Outcome is the classified result of one action die against two
// challenge dice.
type Outcome struct {
	ActionTotal     int    `json:"action_total"`
	ChallengeATotal int    `json:"challenge_a_total"`
	ChallengeBTotal int    `json:"challenge_b_total"`
	SuccessCount    int    `json:"success_count"`
	IsMatch         bool   `json:"is_match"`
	Result          Result `json:"result"`
}

// Classify resolves three totals into an Outcome. The critical branches
// only compare the action against challenge A; on a match A equals B.
func Classify(action, challengeA, challengeB int) Outcome {
	return classify(action, challengeA, challengeB, false, false)
}

// classify treats cleared challenge dice as beaten regardless of the action
// total and never lets them form a match.
func classify(action, challengeA, challengeB int, clearedA, clearedB bool) Outcome {
	o := Outcome{
		ActionTotal:     action,
		ChallengeATotal: challengeA,
		ChallengeBTotal: challengeB,
	}

	if clearedA || challengeA < action {
		o.SuccessCount++
	}
	if clearedB || challengeB < action {
		o.SuccessCount++
	}
	o.IsMatch = !clearedA && !clearedB && challengeA == challengeB

	switch {
	case o.IsMatch && action > challengeA:
		o.Result = ResultCriticalSuccess
	case o.IsMatch:
		o.Result = ResultCriticalFailure
	case o.SuccessCount == 2:
		o.Result = ResultFullSuccess
	case o.SuccessCount == 1:
		o.Result = ResultPartialSuccess
	default:
		o.Result = ResultFailure
	}
	return o
}

// Adjust applies flat modifiers to each total and reclassifies
func (o Outcome) Adjust(action, challengeA, challengeB int) Outcome {
	return o.adjust(action, challengeA, challengeB, false, false)
}

// adjust keeps cleared challenge dice at zero and beaten
func (o Outcome) adjust(action, challengeA, challengeB int, clearedA, clearedB bool) Outcome {
	a, b := o.ChallengeATotal+challengeA, o.ChallengeBTotal+challengeB
	if clearedA {
		a = 0
	}
	if clearedB {
		b = 0
	}
	return classify(o.ActionTotal+action, a, b, clearedA, clearedB)
}
