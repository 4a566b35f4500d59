package errors

import (
	"errors"
	"fmt"
)

const maxChainDepth = 16

// ErrorDump flattens an error chain for structured logs.
type ErrorDump struct {
	TopMessage string   `json:"top_message"`
	Code       Code     `json:"code,omitempty"`
	Message    string   `json:"message,omitempty"`
	Chain      []string `json:"chain,omitempty"`
}

// Dump records at most maxChainDepth links of the Unwrap chain.
func Dump(err error) ErrorDump {
	var d ErrorDump
	if err == nil {
		return d
	}
	d.TopMessage = err.Error()
	if typed := As(err); typed != nil {
		d.Code, d.Message = typed.code, typed.message
	}
	for e := err; e != nil && len(d.Chain) < maxChainDepth; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}
	return d
}
