package service

// ServiceStatus represents the validation result of one generated service
type ServiceStatus struct {
	Name    string // Service name (e.g., "SMF", "arouted")
	Running bool   // true if every validate command succeeded
	Skipped bool   // true if the plan does not start the service on this node
	Detail  string // Output of the failing command, or of the last one run
}
