package cgi

import "fmt"

// Stage identifies the point in the process lifecycle where a failure happened
type Stage string

const (
	StageStart  Stage = "start"
	StageRead   Stage = "read"
	StageWait   Stage = "wait"
	StageSignal Stage = "signal"
)

// ExecutionError represents a failure to run a CGI script to completion.
type ExecutionError struct {
	// Script is the resolved path of the script
	Script string
	// Stage is where the failure happened
	Stage Stage
	// Err is the underlying error
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("cgi script %q failed during %s: %v", e.Script, e.Stage, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Message returns the text sent to the client in the 500 response body
func (e *ExecutionError) Message() string {
	if e.Err == nil {
		return string(e.Stage)
	}
	return e.Err.Error()
}
