// Package script replays a sequence of configured operations against a list.
package script

import (
	"errors"
	"fmt"

	"kk_linked_lists/config"
	"kk_linked_lists/single"
)

// StepError records a step the list refused. The run continues past it.
type StepError struct {
	Index int
	Op    string
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Index, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Result is what a run produced.
type Result struct {
	// Printed holds the line of every print step, in order.
	Printed []string
	Errors  []*StepError
}

// Run applies steps to l in order. Steps are expected to have passed
// config.Validate; an unknown op is recorded as a step error.
func Run(l *single.List[any], steps []config.Step) Result {
	var res Result
	for i, s := range steps {
		var err error
		switch s.Op {
		case config.OpAppend:
			l.Append(s.Value)
		case config.OpInsert:
			if s.Position == nil {
				err = errors.New("insert needs a position")
				break
			}
			err = l.InsertAt(s.Value, *s.Position)
		case config.OpReverse:
			err = l.Reverse()
		case config.OpPrint:
			res.Printed = append(res.Printed, l.PrintList())
		default:
			err = fmt.Errorf("unknown op %q", s.Op)
		}
		if err != nil {
			res.Errors = append(res.Errors, &StepError{Index: i, Op: s.Op, Err: err})
		}
	}
	return res
}
