package commands

import "fmt"

type Result struct {
	Message string
	Lines   []string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Toggle  func(ToggleArgs) (Result, error)
	Show    func(ShowArgs) (Result, error)
	History func(HistoryArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeToggle:
		if handlers.Toggle == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "toggle handler not configured"}
		}
		return handlers.Toggle(*cmd.Toggle)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypeHistory:
		if handlers.History == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "history handler not configured"}
		}
		return handlers.History(*cmd.History)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
