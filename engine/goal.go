package engine

import (
	"fmt"
	"strconv"
)

// Goal selects the matrix produced by Engine.Run.
type Goal string

const (
	GoalSym    Goal = "sym"    // similarity matrix A
	GoalDDG    Goal = "ddg"    // degree matrix D
	GoalNorm   Goal = "norm"   // normalized similarity W
	GoalSymNMF Goal = "symnmf" // factor H
)

// Goals lists the valid goals in documentation order.
var Goals = []Goal{GoalSym, GoalDDG, GoalNorm, GoalSymNMF}

// ParseGoal validates a goal name. Names are case-sensitive.
func ParseGoal(s string) (Goal, error) {
	for _, g := range Goals {
		if string(g) == s {
			return g, nil
		}
	}

	return "", classify("goal", fmt.Errorf("%q: %w", s, ErrUnknownGoal))
}

// ParseK parses a cluster count argument. Only the integer syntax is
// checked here: goals that ignore k accept any integer, and the range
// 1 ≤ k ≤ n is enforced by the stage that uses it.
func ParseK(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, classify("k", fmt.Errorf("%q: %w: %w", s, ErrInvalidK, err))
	}

	return k, nil
}
