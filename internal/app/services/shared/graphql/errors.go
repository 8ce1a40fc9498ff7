package graphql

import "strings"

// Error is one entry of the errors array of a GraphQL response.
type Error struct {
	Message    string        `json:"message"`
	Path       []interface{} `json:"path,omitempty"`
	Extensions struct {
		Code string `json:"code,omitempty"`
	} `json:"extensions"`
}

type Errors []Error

func (e Errors) Error() string {
	messages := make([]string, 0, len(e))
	for _, gqlErr := range e {
		messages = append(messages, gqlErr.Message)
	}
	return strings.Join(messages, "; ")
}

// ErrorCode returns the first machine readable code carried by the errors.
func (e Errors) ErrorCode() string {
	for _, gqlErr := range e {
		if gqlErr.Extensions.Code != "" {
			return gqlErr.Extensions.Code
		}
	}
	return ""
}
