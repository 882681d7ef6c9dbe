package cgi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/muurk/tinyhttpd/internal/httpwire"
	"github.com/muurk/tinyhttpd/internal/sandbox"
	"go.uber.org/zap"
)

// Framing selects how script output is written to the client
type Framing string

const (
	// FramingRaw writes script output verbatim with no status line or headers
	FramingRaw Framing = "raw"
	// FramingWrap wraps script output in a 200 OK response
	FramingWrap Framing = "wrap"
)

// ParseFraming converts a configuration value to a Framing
func ParseFraming(s string) (Framing, error) {
	switch Framing(s) {
	case FramingRaw, "":
		return FramingRaw, nil
	case FramingWrap:
		return FramingWrap, nil
	default:
		return "", fmt.Errorf("invalid cgi framing %q (expected %q or %q)", s, FramingRaw, FramingWrap)
	}
}

// Config holds the configuration for script execution.
type Config struct {
	// Root is the canonical CGI root directory.
	Root string

	// Framing selects how output is relayed.
	// Default: FramingRaw
	Framing Framing

	// Stderr receives the scripts' standard error.
	// Default: os.Stderr
	Stderr io.Writer
}

// Executor runs CGI scripts via os/exec.
type Executor struct {
	config Config
	logger *zap.Logger
}

// NewExecutor creates a new executor with the given configuration.
func NewExecutor(config Config, logger *zap.Logger) *Executor {
	if config.Framing == "" {
		config.Framing = FramingRaw
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		config: config,
		logger: logger,
	}
}

// Execute handles a /cgi-bin/ request and writes the result to w.
// Script failures are turned into responses; the returned error is only
// non-nil when writing to w fails.
//
// Steps:
//  1. Resolve the script below the CGI root
//  2. Start the process with stdout on a pipe
//  3. Read stdout to EOF
//  4. Wait for the process to exit
//  5. Write the output (raw or wrapped)
func (e *Executor) Execute(ctx context.Context, w io.Writer, urlPath string) error {
	script, err := e.Resolve(urlPath)
	if err != nil {
		e.logger.Info("cgi script not found",
			zap.String("path", urlPath),
			zap.Error(err),
		)
		return writeResponse(w, httpwire.ScriptNotFound())
	}

	output, err := e.Run(ctx, script)
	if err != nil {
		var execErr *ExecutionError
		msg := err.Error()
		if errors.As(err, &execErr) {
			msg = execErr.Message()
		}
		e.logger.Error("cgi script failed",
			zap.String("script", script),
			zap.Error(err),
		)
		return writeResponse(w, httpwire.InternalError(msg))
	}

	if e.config.Framing == FramingWrap {
		return writeResponse(w, httpwire.OK(httpwire.ContentTypeHTML, output))
	}

	if _, err := w.Write(output); err != nil {
		return fmt.Errorf("failed to write cgi output: %w", err)
	}
	return nil
}

// Resolve maps a /cgi-bin/ URL path to an existing regular file below the
// CGI root. Out-of-root and missing scripts are both reported as errors.
func (e *Executor) Resolve(urlPath string) (string, error) {
	script, err := sandbox.Resolve(e.config.Root, sandbox.CGIRelative(urlPath))
	if err != nil {
		return "", err
	}

	info, err := os.Stat(script)
	if err != nil {
		return "", fmt.Errorf("failed to stat script: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("script %q is not a regular file", script)
	}
	return script, nil
}

// Run executes script and returns everything it wrote to stdout.
// The process is always waited on before Run returns.
func (e *Executor) Run(ctx context.Context, script string) ([]byte, error) {
	startTime := time.Now()

	cmd := exec.CommandContext(ctx, script)
	cmd.Stderr = e.config.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &ExecutionError{Script: script, Stage: StageStart, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &ExecutionError{Script: script, Stage: StageStart, Err: err}
	}

	e.logger.Debug("cgi process started",
		zap.String("script", script),
		zap.Int("pid", cmd.Process.Pid),
	)

	output, readErr := io.ReadAll(stdout)
	waitErr := cmd.Wait()
	duration := time.Since(startTime)

	if readErr != nil {
		return nil, &ExecutionError{Script: script, Stage: StageRead, Err: readErr}
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, &ExecutionError{Script: script, Stage: StageWait, Err: waitErr}
		}
		// ExitCode is -1 when the process was terminated by a signal
		if exitErr.ExitCode() < 0 {
			return nil, &ExecutionError{Script: script, Stage: StageSignal, Err: waitErr}
		}
		e.logger.Warn("cgi process exited with non-zero status",
			zap.String("script", script),
			zap.Int("exit_code", exitErr.ExitCode()),
		)
	}

	e.logger.Info("cgi process complete",
		zap.String("script", script),
		zap.Duration("duration", duration),
		zap.Int("exit_code", cmd.ProcessState.ExitCode()),
		zap.Int("stdout_size", len(output)),
	)

	return output, nil
}

func writeResponse(w io.Writer, resp httpwire.Response) error {
	if _, err := resp.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %q response: %w", resp.Status, err)
	}
	return nil
}
