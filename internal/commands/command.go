package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeEdit   Type = "edit"
	TypeDelete Type = "delete"
	TypeDone   Type = "done"
	TypeSearch Type = "search"
	TypeTab    Type = "tab"
	TypePage   Type = "page"
	TypeTheme  Type = "theme"
)

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

// fieldSep separates name and description in add and edit arguments.
const fieldSep = "|"

type AddArgs struct {
	Name        string
	Description string
}

type EditArgs struct {
	Target      string
	Name        string
	Description string
}

type TargetArgs struct {
	Name string
}

type SearchArgs struct {
	Text string
}

type TabArgs struct {
	Tab string
}

type PageArgs struct {
	Page int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Edit   *EditArgs
	Target *TargetArgs
	Search *SearchArgs
	Tab    *TabArgs
	Page   *PageArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, rest)
	case TypeEdit:
		return parseEdit(input, rest)
	case TypeDelete, TypeDone:
		return parseTarget(input, Type(head), rest)
	case TypeSearch:
		return Command{Type: TypeSearch, Raw: input, Search: &SearchArgs{Text: rest}}, nil
	case TypeTab:
		return parseTab(input, rest)
	case TypePage:
		return parsePage(input, rest)
	case TypeTheme:
		return Command{Type: TypeTheme, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func splitFields(rest string) []string {
	parts := strings.Split(rest, fieldSep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseAdd(raw, rest string) (Command, error) {
	parts := splitFields(rest)
	if parts[0] == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a name"}
	}
	args := &AddArgs{Name: parts[0]}
	if len(parts) > 1 {
		args.Description = strings.Join(parts[1:], " "+fieldSep+" ")
	}
	return Command{Type: TypeAdd, Raw: raw, Add: args}, nil
}

func parseEdit(raw, rest string) (Command, error) {
	parts := splitFields(rest)
	if len(parts) < 3 || parts[0] == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "edit requires: task | new name | new description"}
	}
	return Command{Type: TypeEdit, Raw: raw, Edit: &EditArgs{
		Target:      parts[0],
		Name:        parts[1],
		Description: strings.Join(parts[2:], " "+fieldSep+" "),
	}}, nil
}

func parseTarget(raw string, typ Type, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task name", typ)}
	}
	return Command{Type: typ, Raw: raw, Target: &TargetArgs{Name: rest}}, nil
}

func parseTab(raw, rest string) (Command, error) {
	if rest == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "tab requires one of: all, todo, completed"}
	}
	return Command{Type: TypeTab, Raw: raw, Tab: &TabArgs{Tab: strings.ToLower(rest)}}, nil
}

func parsePage(raw, rest string) (Command, error) {
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "page requires a positive number"}
	}
	return Command{Type: TypePage, Raw: raw, Page: &PageArgs{Page: n}}, nil
}
