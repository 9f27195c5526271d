package version

var (
	// GitCommit is the current HEAD set using ldflags.
	GitCommit string

	// Version is the built softwares version.
	Version = CyborstateSemVer
)

func init() {
	if GitCommit != "" {
		Version += "-" + GitCommit
	}
}

const (
	// CyborstateSemVer is the current version of cyborstate.
	// It's the Semantic Version of the software.
	CyborstateSemVer = "0.3.0"

	// StateSchemaVersion versions the binary layout of the decoded state.
	// Any change to field order or widths must bump it.
	StateSchemaVersion uint64 = 1
)

// Info describes a build.
type Info struct {
	Cyborstate  string `json:"cyborstate"`
	StateSchema uint64 `json:"state_schema"`
	GitCommit   string `json:"git_commit,omitempty"`
}

// Get returns the version information of this build.
func Get() Info {
	return Info{
		Cyborstate:  Version,
		StateSchema: StateSchemaVersion,
		GitCommit:   GitCommit,
	}
}
