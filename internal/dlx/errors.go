package dlx

import (
	"errors"
	"fmt"
)

// ErrInfeasible reports that the search exhausted every branch: no exact
// cover exists for the seeded givens. A valid outcome, not a defect.
var ErrInfeasible = errors.New("no exact cover exists")

// ErrBudgetExceeded reports that the search passed MaxNodes row branches.
var ErrBudgetExceeded = errors.New("search node budget exceeded")

// ConflictError reports a given that contradicts an earlier one: its row
// touches a constraint column some previous clue already satisfied. Returned
// before any search runs; the matrix is consumed.
type ConflictError struct {
	Row, Col int
	Value    uint8
	Column   string // name of the already-covered constraint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicting clue %d at (%d,%d): constraint %s already satisfied",
		e.Value, e.Row, e.Col, e.Column)
}
