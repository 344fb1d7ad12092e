package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sandeepkv93/tasklist/internal/model"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeToggle  Type = "toggle"
	TypeShow    Type = "show"
	TypeHistory Type = "history"
)

var knownTypes = []Type{TypeAdd, TypeToggle, TypeShow, TypeHistory}

const DefaultHistoryLimit = 10

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type ToggleArgs struct {
	ID int
}

type ShowArgs struct {
	Filter model.Filter
}

type HistoryArgs struct {
	Limit int
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Toggle  *ToggleArgs
	Show    *ShowArgs
	History *HistoryArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, raw, head)
	case TypeToggle:
		return parseToggle(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeHistory:
		return parseHistory(input, args)
	default:
		msg := fmt.Sprintf("unsupported command: %s", head)
		if guess, ok := suggest(head); ok {
			msg += fmt.Sprintf(" (did you mean %s?)", guess)
		}
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: msg}
	}
}

func parseAdd(input, raw, head string) (Command, error) {
	text := strings.TrimSpace(raw[len(head):])
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: input, Add: &AddArgs{Text: text}}, nil
}

func parseToggle(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "toggle requires a task id"}
	}
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("toggle id must be an integer: %s", args[0])}
	}
	return Command{Type: TypeToggle, Raw: raw, Toggle: &ToggleArgs{ID: id}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires all, active or completed"}
	}
	filter, ok := model.ParseFilter(args[0])
	if !ok {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown filter: %s", args[0])}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Filter: filter}}, nil
}

func parseHistory(raw string, args []string) (Command, error) {
	limit := DefaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("history limit must be a positive integer: %s", args[0])}
		}
		limit = n
	}
	return Command{Type: TypeHistory, Raw: raw, History: &HistoryArgs{Limit: limit}}, nil
}

func suggest(head string) (Type, bool) {
	best := Type("")
	bestDist := 3
	for _, t := range knownTypes {
		if d := levenshtein.ComputeDistance(head, string(t)); d < bestDist {
			best, bestDist = t, d
		}
	}
	return best, best != ""
}
