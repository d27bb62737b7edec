package entity

import "context"

// HandlerFunction runs one command. The returned string is the success
// message reported to the user when err is nil.
type HandlerFunction func(context.Context, *CommandRequest) (string, error)

type PanicFunction func(ctx context.Context, err string, stacktrace string, command string, args []string) error
