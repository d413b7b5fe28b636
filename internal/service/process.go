package service

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/nrlgen/internal/config/generator"
)

// DefaultCommandTimeout bounds a single validate command
const DefaultCommandTimeout = 5 * time.Second

// CommandRunner runs generated command lines through /bin/sh
type CommandRunner struct {
	Dir     string        // Working directory (the rendered node directory)
	Timeout time.Duration // Per-command limit
	log     zerolog.Logger
}

// NewCommandRunner creates a runner executing in dir
func NewCommandRunner(dir string, log zerolog.Logger) *CommandRunner {
	return &CommandRunner{
		Dir:     dir,
		Timeout: DefaultCommandTimeout,
		log:     log.With().Str("component", "runner").Logger(),
	}
}

// Run executes command and returns its combined, trimmed output
func (r *CommandRunner) Run(ctx context.Context, command string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = r.Dir
	// children of sh may hold the output pipe open after sh is killed
	cmd.WaitDelay = 500 * time.Millisecond
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := strings.TrimSpace(out.String())
	r.log.Debug().Str("command", command).Err(err).Msg("ran command")
	if err != nil {
		if ctx.Err() != nil {
			return output, fmt.Errorf("%s: %w", command, ctx.Err())
		}
		return output, fmt.Errorf("%s: %w", command, err)
	}
	return output, nil
}

// Status runs the validate commands of every service in plan, in start
// order. Skipped services are reported without running anything.
func (r *CommandRunner) Status(ctx context.Context, plan *generator.Plan) []ServiceStatus {
	statuses := make([]ServiceStatus, 0, len(plan.Services))

	for _, sp := range plan.Services {
		status := ServiceStatus{Name: sp.Name, Skipped: sp.Skipped}
		if sp.Skipped {
			statuses = append(statuses, status)
			continue
		}

		status.Running = true
		for _, command := range sp.Validate {
			output, err := r.Run(ctx, command)
			status.Detail = output
			if err != nil {
				status.Running = false
				if output == "" {
					status.Detail = err.Error()
				}
				break
			}
		}
		statuses = append(statuses, status)
	}

	return statuses
}
