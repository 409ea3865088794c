package core

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("no results found for this id")

const defaultFetchErrorMessage = "failed to load results, please try again"

// SubmissionError is returned when the backend rejects a survey submission.
// Detail carries the most specific explanation found in the response, if any.
type SubmissionError struct {
	Detail     string
	StatusCode int
}

func (e *SubmissionError) Error() string {
	msg := fmt.Sprintf("survey save failed: %d", e.StatusCode)
	if e.Detail != "" {
		msg += " - " + e.Detail
	}

	return msg
}

// FetchError is returned when a result lookup fails for any reason other than a missing id.
// Message is the backend provided explanation and may be empty.
type FetchError struct {
	Message    string
	StatusCode int
}

func (e *FetchError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return defaultFetchErrorMessage
}

// Result is the scoring backend's result document, passed through untouched.
type Result json.RawMessage

func (r Result) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}

	return r, nil
}
