// Package deps reports the availability of the external executables the
// tool shells out to.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Requirement defines an external executable dependency.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements. A command containing a
// path separator is checked on disk directly; bare names are resolved via
// PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		switch {
		case cmd == "":
			status.Detail = "command not configured"
		case strings.ContainsAny(cmd, `/\`):
			if info, err := os.Stat(cmd); err != nil {
				status.Detail = fmt.Sprintf("executable %q not found", cmd)
			} else if info.IsDir() {
				status.Detail = fmt.Sprintf("%q is a directory", cmd)
			} else {
				status.Available = true
			}
		default:
			if _, err := exec.LookPath(cmd); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found in PATH", cmd)
			} else {
				status.Available = true
			}
		}
		results = append(results, status)
	}
	return results
}
