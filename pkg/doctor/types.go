// Package doctor checks that the build executable, environment and vendor
// tree are usable before a rebuild.
package doctor

// CheckStatus represents the status of a check.
type CheckStatus int

const (
	// StatusOK indicates the prerequisite is present and working.
	StatusOK CheckStatus = iota
	// StatusMissing indicates the prerequisite is absent.
	StatusMissing
	// StatusError indicates an error occurred during the check.
	StatusError
	// StatusWarning indicates the prerequisite has issues but may work.
	StatusWarning
)

// String returns the string representation of the status.
func (s CheckStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Check represents a single check result.
type Check struct {
	ID          string      // Unique identifier, e.g., "build-executable"
	Name        string      // Display name
	Description string      // What is being checked
	Status      CheckStatus // Current status
	Message     string      // Status message (version info, error, etc.)
	Hint        string      // How to fix, empty when OK
}

// CheckID constants for individual checks.
const (
	IDBuildExecutable = "build-executable"
	IDGOPATH          = "gopath"
	IDVendorRoot      = "vendor-root"
)
