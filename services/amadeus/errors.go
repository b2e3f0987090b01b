package amadeus

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
)

// Issue is one entry of the "errors" array Amadeus returns on failure.
type Issue struct {
	Status int          `json:"status"`
	Code   int          `json:"code"`
	Title  string       `json:"title"`
	Detail string       `json:"detail"`
	Source *IssueSource `json:"source,omitempty"`
}

type IssueSource struct {
	Parameter string `json:"parameter,omitempty"`
	Pointer   string `json:"pointer,omitempty"`
	Example   string `json:"example,omitempty"`
}

// APIError is a non-2xx answer from the API or its token endpoint.
type APIError struct {
	StatusCode int
	Issues     []Issue
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("amadeus: status %d: %s", e.StatusCode, e.Description())
}

// Description is the most specific human-readable text available.
func (e *APIError) Description() string {
	for _, issue := range e.Issues {
		if issue.Detail != "" {
			return issue.Detail
		}
	}
	for _, issue := range e.Issues {
		if issue.Title != "" {
			return issue.Title
		}
	}
	return strings.TrimSpace(e.Body)
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Body: string(body)}

	var envelope struct {
		Errors []Issue `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Issues = envelope.Errors
	}
	return apiErr
}

func newTokenError(err *oauth2.RetrieveError) *APIError {
	apiErr := &APIError{Body: string(err.Body)}
	if err.Response != nil {
		apiErr.StatusCode = err.Response.StatusCode
	}
	if err.ErrorCode != "" || err.ErrorDescription != "" {
		apiErr.Issues = []Issue{{
			Status: apiErr.StatusCode,
			Title:  err.ErrorCode,
			Detail: err.ErrorDescription,
		}}
	}
	return apiErr
}
