package stripeapi

import "fmt"

// Error is an error envelope returned by the payment API. Transport
// failures and remote validation failures both surface through it
// unmodified; callers that need the HTTP status can errors.As into it.
type Error struct {
	Type       string `json:"type"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Param      string `json:"param"`
	StatusCode int    `json:"-"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("stripeapi: %s (%s): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("stripeapi: %s: %s", e.Type, e.Message)
}

type errorResponse struct {
	Error *Error `json:"error"`
}
