// Package report tracks the visible outcome of a form submission.
//
// The machine has three visible states. An Attempt always moves to Idle
// with a delivery in flight; the in-flight delivery then ends in Success or
// Error. Error is only left through another Attempt.
package report

import (
	"errors"
	"fmt"

	"bestchungsan/internal/form"
)

type State int

const (
	Idle State = iota
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Success:
		return "success"
	case Error:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Event int

const (
	Attempt Event = iota
	Delivered
	Failed
)

func (e Event) String() string {
	switch e {
	case Attempt:
		return "attempt"
	case Delivered:
		return "delivered"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

var ErrIllegalTransition = errors.New("illegal result transition")

// Messages shown to the visitor.
const (
	MessageSuccess = "의뢰서가 성공적으로 전송되었습니다. 빠른 시일 내에 연락드리겠습니다."
	MessageError   = "전송 중 오류가 발생했습니다. 다시 시도해주세요."
	MessageConsent = "개인정보 처리방침에 동의해주세요."
)

// Transition applies e to s. inFlight tells whether a delivery has been
// started by a previous Attempt.
func Transition(s State, inFlight bool, e Event) (State, bool, error) {
	switch e {
	case Attempt:
		if inFlight {
			return s, inFlight, fmt.Errorf("%w: %s while in flight", ErrIllegalTransition, e)
		}
		return Idle, true, nil
	case Delivered:
		if !inFlight {
			return s, inFlight, fmt.Errorf("%w: %s from %s", ErrIllegalTransition, e, s)
		}
		return Success, false, nil
	case Failed:
		if !inFlight {
			return s, inFlight, fmt.Errorf("%w: %s from %s", ErrIllegalTransition, e, s)
		}
		return Error, false, nil
	}
	return s, inFlight, fmt.Errorf("%w: unknown event %d", ErrIllegalTransition, int(e))
}

// Reporter couples the result machine with the form it reports on: a
// delivered submission clears the form, a failed one keeps it for retry.
type Reporter struct {
	holder   *form.Holder
	state    State
	inFlight bool
}

func NewReporter(holder *form.Holder) *Reporter {
	return &Reporter{holder: holder, state: Idle}
}

func (r *Reporter) State() State { return r.state }

// InFlight reports whether a delivery started and has not settled yet.
func (r *Reporter) InFlight() bool { return r.inFlight }

func (r *Reporter) Apply(e Event) error {
	next, inFlight, err := Transition(r.state, r.inFlight, e)
	if err != nil {
		return err
	}
	r.state, r.inFlight = next, inFlight
	if next == Success {
		r.holder.Reset()
	}
	return nil
}

// Message returns the feedback for the current state, empty for Idle.
func (r *Reporter) Message() string {
	switch r.state {
	case Success:
		return MessageSuccess
	case Error:
		return MessageError
	}
	return ""
}
