package services

import (
	"fmt"
	"strings"

	"github.com/danieljhkim/nrlgen/internal/util"
)

// script builds the /bin/sh wrapper scripts for daemons that must be
// backgrounded or gated on another daemon
type script struct {
	service  string
	comments []string
	preamble string
	lines    []string
}

func newScript(service string) *script {
	return &script{service: service}
}

func (s *script) comment(format string, args ...interface{}) {
	s.comments = append(s.comments, "# "+fmt.Sprintf(format, args...))
}

// wait sets a barrier preamble that must pass before any line runs
func (s *script) wait(preamble string) {
	s.preamble = preamble
}

func (s *script) run(cmd string) {
	s.lines = append(s.lines, cmd)
}

// detach runs cmd in the background with stdin closed and output sent to
// logPath, so a foreground-only daemon does not hold up the caller
func (s *script) detach(cmd, logPath string) {
	s.lines = append(s.lines, fmt.Sprintf("%s < /dev/null > %s 2>&1 &", cmd, util.ShellEscape(logPath)))
}

func (s *script) String() string {
	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&sb, "# auto-generated by nrlgen (%s)\n", s.service)
	for _, c := range s.comments {
		sb.WriteString(c)
		sb.WriteString("\n")
	}
	if s.preamble != "" {
		sb.WriteString("\n")
		sb.WriteString(s.preamble)
		sb.WriteString("\n")
	}
	for _, l := range s.lines {
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
