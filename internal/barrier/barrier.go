// Package barrier implements the bounded polling wait that lets one daemon
// start only after another daemon's runtime resource (a pipe, a socket, a
// device) exists. The same policy is available as a shell preamble for
// generated startup scripts and as a Go primitive.
package barrier

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/danieljhkim/nrlgen/internal/util"
)

const (
	DefaultAttempts = 10
	DefaultInterval = 100 * time.Millisecond
)

// ErrNotReady is returned when the resource did not appear within the bound
var ErrNotReady = errors.New("resource not ready")

// Barrier is a bounded wait: the resource is checked at most Attempts times
// with Interval between checks
type Barrier struct {
	Attempts int           `yaml:"attempts" validate:"min=1"`
	Interval time.Duration `yaml:"interval" validate:"min=0"`
}

// Default returns the 10 x 100ms barrier
func Default() Barrier {
	return Barrier{
		Attempts: DefaultAttempts,
		Interval: DefaultInterval,
	}
}

// Validate checks that the barrier is usable
func (b Barrier) Validate() error {
	if b.Attempts < 1 {
		return fmt.Errorf("barrier attempts must be at least 1, got %d", b.Attempts)
	}
	if b.Interval < 0 {
		return fmt.Errorf("barrier interval must not be negative, got %s", b.Interval)
	}
	return nil
}

// Timeout is the longest the barrier can hold up a dependent daemon
func (b Barrier) Timeout() time.Duration {
	return time.Duration(b.Attempts) * b.Interval
}

// Script renders a /bin/sh preamble that waits for every path to exist.
// A path still missing after Attempts checks makes the script print a
// diagnostic and exit 1, so nothing after the preamble runs. Attempts below
// 1 render as a single check.
func (b Barrier) Script(paths ...string) string {
	if len(paths) == 0 {
		return ""
	}
	b.Attempts = max(b.Attempts, 1)
	b.Interval = max(b.Interval, 0)

	quoted := make([]string, 0, len(paths))
	for _, p := range paths {
		quoted = append(quoted, util.ShellQuote(p))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "for f in %s; do\n", strings.Join(quoted, " "))
	sb.WriteString("    count=1\n")
	sb.WriteString("    until [ -e \"$f\" ]; do\n")
	fmt.Fprintf(&sb, "        if [ $count -eq %d ]; then\n", b.Attempts)
	sb.WriteString("            echo \"ERROR: resource not found: $f\" >&2\n")
	sb.WriteString("            exit 1\n")
	sb.WriteString("        fi\n")
	fmt.Fprintf(&sb, "        sleep %s\n", formatSeconds(b.Interval))
	sb.WriteString("        count=$(($count + 1))\n")
	sb.WriteString("    done\n")
	sb.WriteString("done\n")
	return sb.String()
}

// Wait calls check until it returns true, at most Attempts times, sleeping
// Interval between calls. It returns an error wrapping ErrNotReady when the
// attempts run out, or the context's error if ctx is done first.
func (b Barrier) Wait(ctx context.Context, check func() bool) error {
	if err := b.Validate(); err != nil {
		return err
	}

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		if check() {
			return struct{}{}, nil
		}
		return struct{}{}, ErrNotReady
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(b.Interval)),
		backoff.WithMaxTries(uint(b.Attempts)),
		backoff.WithMaxElapsedTime(0),
	)
	if err != nil {
		if errors.Is(err, ErrNotReady) {
			return fmt.Errorf("gave up after %d attempts: %w", b.Attempts, err)
		}
		return err
	}
	return nil
}

// WaitForPath waits for path to exist on the local filesystem
func (b Barrier) WaitForPath(ctx context.Context, path string) error {
	if err := b.Wait(ctx, func() bool { return util.FileExists(path) }); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// formatSeconds renders d for sleep(1): 100ms -> "0.1", 2s -> "2"
func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
