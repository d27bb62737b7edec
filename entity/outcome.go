package entity

type OutcomeKind int

const (
	Success OutcomeKind = iota
	Failure
)

// Outcome is the single result reported for a command.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

func Succeeded(message string) *Outcome {
	return &Outcome{Kind: Success, Message: message}
}

func Failed(message string) *Outcome {
	return &Outcome{Kind: Failure, Message: message}
}

// NewOutcome builds the outcome of a handler call.
func NewOutcome(message string, err error) *Outcome {
	if err != nil {
		return Failed(err.Error())
	}
	return Succeeded(message)
}

func (o *Outcome) OK() bool {
	return o.Kind == Success
}

func (o *Outcome) ExitCode() int {
	if o.OK() {
		return 0
	}
	return 1
}
