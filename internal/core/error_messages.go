// Package core provides the table shuffling logic behind the permute command.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. The code is attached to the final failure log line so a user
// can quote it.
//
// # File Errors (FILE001-FILE099)
//
//	FILE001 - Not found: The input file does not exist
//	          Action: Check the input path
//	          Kind: KindNotFound
//
//	FILE002 - Encoding error: The input contains invalid characters
//	          Action: Save the file as UTF-8
//	          Patterns: "invalid utf-8"
//
//	FILE003 - Bad delimiter: The delimiter cannot be used
//	          Action: Pass a single character with --delimiter
//	          Patterns: "delimiter must be"
//
//	FILE004 - Empty file: The input has no rows to read
//	          Action: Provide a file with at least one line
//	          Patterns: "no columns to parse"
//
//	FILE005 - Malformed rows: Rows do not line up with the header
//	          Action: Check quoting and the number of fields on each line
//	          Patterns: "wrong number of fields", "fields in line", "bare \"", "extraneous"
//
//	FILE006 - Unreadable input: The input could not be parsed
//	          Action: Verify --file_type matches the file
//	          Kind: KindLoad (fallback)
//
//	FILE007 - Unsupported output: The output extension is not a spreadsheet format
//	          Action: Use .xlsx for excel output
//	          Patterns: "unsupported workbook file format"
//
//	FILE008 - Permission denied: The output path is not writable
//	          Action: Choose a writable location
//	          Patterns: "permission denied"
//
//	FILE009 - Write failed: The output could not be written
//	          Action: Check the output path and free disk space
//	          Kind: KindWrite (fallback)
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Check the logs for the original error
//
// # Pattern Matching
//
// Patterns are matched case-insensitively against the error text, only for
// errors of the listed kind. The first matching pattern wins.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern maps a substring of a given error kind to a message.
type errorPattern struct {
	kind    ErrorKind
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// =========================================================================
	// Load Errors
	// =========================================================================
	{
		kind:    KindLoad,
		pattern: "invalid utf-8",
		msg: UserMessage{
			Message: "The input contains invalid characters",
			Action:  "Save the file as UTF-8",
			Code:    "FILE002",
		},
	},
	{
		kind:    KindLoad,
		pattern: "delimiter must be",
		msg: UserMessage{
			Message: "The delimiter cannot be used",
			Action:  "Pass a single character with --delimiter",
			Code:    "FILE003",
		},
	},
	{
		kind:    KindLoad,
		pattern: "no columns to parse",
		msg: UserMessage{
			Message: "The input has no rows to read",
			Action:  "Provide a file with at least one line",
			Code:    "FILE004",
		},
	},
	{
		kind:    KindLoad,
		pattern: "wrong number of fields",
		msg:     malformedRows,
	},
	{
		kind:    KindLoad,
		pattern: "fields in line",
		msg:     malformedRows,
	},
	{
		kind:    KindLoad,
		pattern: "bare \"",
		msg:     malformedRows,
	},
	{
		kind:    KindLoad,
		pattern: "extraneous",
		msg:     malformedRows,
	},

	// =========================================================================
	// Write Errors
	// =========================================================================
	{
		kind:    KindWrite,
		pattern: "unsupported workbook file format",
		msg: UserMessage{
			Message: "The output extension is not a spreadsheet format",
			Action:  "Use .xlsx for excel output",
			Code:    "FILE007",
		},
	},
	{
		kind:    KindWrite,
		pattern: "permission denied",
		msg: UserMessage{
			Message: "The output path is not writable",
			Action:  "Choose a writable location",
			Code:    "FILE008",
		},
	},
}

var malformedRows = UserMessage{
	Message: "Rows do not line up with the header",
	Action:  "Check quoting and the number of fields on each line",
	Code:    "FILE005",
}

// kindMessages are used when no pattern matches.
var kindMessages = map[ErrorKind]UserMessage{
	KindNotFound: {
		Message: "The input file does not exist",
		Action:  "Check the input path",
		Code:    "FILE001",
	},
	KindLoad: {
		Message: "The input could not be parsed",
		Action:  "Verify --file_type matches the file",
		Code:    "FILE006",
	},
	KindWrite: {
		Message: "The output could not be written",
		Action:  "Check the output path and free disk space",
		Code:    "FILE009",
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the logs for the original error",
	Code:    "ERR000",
}

// MapError converts an error into a user-friendly message.
// Returns an empty UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	kind := KindOf(err)
	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if ep.kind == kind && strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	if msg, ok := kindMessages[kind]; ok {
		return msg
	}
	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
