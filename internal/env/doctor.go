package env

import (
	"fmt"
	"io"

	"github.com/danieljhkim/nrlgen/internal/services"
	"github.com/danieljhkim/nrlgen/internal/util"
)

// DoctorCheck represents a single dependency check
type DoctorCheck struct {
	Command  string // Command name
	Service  string // Service that needs it, empty for baseline tools
	Required bool   // true if required, false if optional
	Found    bool   // true if command is available
}

// DoctorResult holds the results of all checks
type DoctorResult struct {
	Target      string        // Target context (e.g., node name)
	Checks      []DoctorCheck // All checks performed
	HasFailures bool          // true if any required check failed
}

// baseline tools: startup scripts run under sh, status uses pidof
var (
	baseRequired = []string{"sh"}
	baseOptional = []string{"pidof"}
)

// RunDoctor checks that the executables behind descs are installed.
// When zebra is true the external zebra daemon is checked as optional.
func RunDoctor(target string, descs []services.Descriptor, zebra bool, detector Detector) *DoctorResult {
	result := &DoctorResult{Target: target}

	add := func(command, service string, required bool) {
		for _, c := range result.Checks {
			if c.Command == command {
				return
			}
		}
		found := detector.IsInstalled(command)
		result.Checks = append(result.Checks, DoctorCheck{
			Command:  command,
			Service:  service,
			Required: required,
			Found:    found,
		})
		if required && !found {
			result.HasFailures = true
		}
	}

	for _, cmd := range baseRequired {
		add(cmd, "", true)
	}
	for _, d := range descs {
		for _, bin := range Binaries(d) {
			add(bin, d.Name, true)
		}
	}
	for _, cmd := range baseOptional {
		add(cmd, "", false)
	}
	if zebra {
		add("zebra", services.NameZebra, false)
	}

	return result
}

// Print writes the doctor check results to w
func (dr *DoctorResult) Print(w io.Writer) {
	targetStr := "all services"
	if dr.Target != "" {
		targetStr = dr.Target
	}

	util.Section(w, "Doctor (%s)", targetStr)

	rows := make([]util.TableRow, 0, len(dr.Checks))
	for _, check := range dr.Checks {
		row := util.TableRow{Name: check.Command, Status: "OK", Ok: true}
		if !check.Found {
			if check.Required {
				row.Status, row.Ok = "FAIL", false
			} else {
				row.Status, row.Ok = "WARN", false
			}
		}
		switch {
		case check.Service != "" && !check.Required:
			row.Detail = fmt.Sprintf("%s (optional)", check.Service)
		case check.Service != "":
			row.Detail = check.Service
		case !check.Required:
			row.Detail = "(optional)"
		}
		rows = append(rows, row)
	}
	util.Table(w, rows)
}

// ExitCode returns the appropriate exit code
// 0 if all required checks passed, 1 if any failed
func (dr *DoctorResult) ExitCode() int {
	if dr.HasFailures {
		return 1
	}
	return 0
}
