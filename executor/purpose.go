package executor

import (
	"github.com/DataDog/go-sqllexer"
	"strings"
)

type Purpose string

const (
	PurposeQuery   Purpose = "QUERY"
	PurposeInsert  Purpose = "INSERT"
	PurposeUpdate  Purpose = "UPDATE"
	PurposeDelete  Purpose = "DELETE"
	PurposeCommand Purpose = "COMMAND"
)

func (p Purpose) modifiesRows() bool {
	return p == PurposeInsert || p == PurposeUpdate || p == PurposeDelete
}

func isSpace(value string) bool {
	return value != "" && strings.TrimSpace(value) == ""
}

func isComment(value string) bool {
	return strings.HasPrefix(value, "--") || strings.HasPrefix(value, "/*")
}

func isInsignificant(value string) bool {
	return value == "" || isSpace(value) || isComment(value)
}

func isOpenParen(value string) bool {
	return value != "" && strings.Trim(value, "(") == ""
}

// PurposeOf classifies a statement by its leading keyword. Opening parentheses
// before the keyword are skipped.
func PurposeOf(query string) Purpose {
	for _, token := range sqllexer.New(query).ScanAll() {
		if isInsignificant(token.Value) || isOpenParen(token.Value) {
			continue
		}
		switch strings.ToLower(token.Value) {
		case "select", "with", "values", "table":
			return PurposeQuery
		case "insert", "replace":
			return PurposeInsert
		case "update":
			return PurposeUpdate
		case "delete":
			return PurposeDelete
		default:
			return PurposeCommand
		}
	}
	return PurposeCommand
}

// compact collapses every run of whitespace outside literals into one space.
// Whitespace ending a line comment stays a line break.
func compact(query string) string {
	var sb strings.Builder
	pendingSpace := false
	afterComment := false
	for _, token := range sqllexer.New(query).ScanAll() {
		if token.Value == "" {
			continue
		}
		if isSpace(token.Value) {
			pendingSpace = sb.Len() > 0
			continue
		}
		if afterComment {
			sb.WriteRune('\n')
		} else if pendingSpace {
			sb.WriteRune(' ')
		}
		pendingSpace = false
		afterComment = strings.HasPrefix(token.Value, "--")
		sb.WriteString(token.Value)
	}
	return sb.String()
}
