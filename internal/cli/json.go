package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var jsonOutput bool

// Response is the envelope every --json invocation prints exactly once.
type Response struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
	Meta  *Meta       `json:"meta,omitempty"`
}

// ErrorInfo is the machine-readable half of a failure.
type ErrorInfo struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Meta carries counts for list-shaped results.
type Meta struct {
	Count int `json:"count,omitempty"`
}

func isJSONOutput() bool { return jsonOutput }

func writeResponse(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func outputSuccess(data interface{}, meta *Meta) {
	writeResponse(Response{OK: true, Data: data, Meta: meta})
}

func outputError(code, message string, details interface{}, suggestion string) {
	writeResponse(Response{Error: &ErrorInfo{
		Code:       code,
		Message:    message,
		Details:    details,
		Suggestion: suggestion,
	}})
}

// handleError reports a failure. In JSON mode the envelope is the whole
// report and nil is returned so cobra stays quiet; otherwise the suggestion
// rides along on the returned error.
func handleError(code string, err error, suggestion string) error {
	return reportError(code, err, suggestion, nil)
}

func handleErrorMsg(code, message, suggestion string) error {
	return reportError(code, errors.New(message), suggestion, nil)
}

func handleErrorWithDetails(code, message, suggestion string, details interface{}) error {
	return reportError(code, errors.New(message), suggestion, details)
}

func reportError(code string, err error, suggestion string, details interface{}) error {
	if jsonOutput {
		outputError(code, err.Error(), details, suggestion)
		return nil
	}
	if suggestion != "" {
		return fmt.Errorf("%w\n\n%s", err, suggestion)
	}
	return err
}
