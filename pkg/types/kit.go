package types

// GroupKind distinguishes how a group's assets are discovered.
type GroupKind string

const (
	// GroupFiles selects files directly under the group's directory by glob pattern.
	GroupFiles GroupKind = "files"
	// GroupTree selects every regular file under the group's directory, recursively.
	GroupTree GroupKind = "tree"
)

// Group describes one named set of installable assets inside a kit.
type Group struct {
	// Name identifies the group ("hooks", "utils", "agents", ...).
	Name string `json:"name"`

	// Dir is the group's directory relative to the kit root. Empty means
	// the kit root itself (used by the flat hook-script group).
	Dir string `json:"dir"`

	// Kind selects flat-glob or recursive discovery.
	Kind GroupKind `json:"kind"`

	// Pattern is the glob applied to base names for GroupFiles groups.
	Pattern string `json:"pattern,omitempty"`

	// Optional groups are only processed when selected by the caller.
	Optional bool `json:"optional"`
}

// Asset is one installable file, identified by its path relative to the
// kit root. The same relative path locates it under the target directory.
type Asset struct {
	RelPath string `json:"relPath"`
	Group   string `json:"group"`
}

// KitInfo summarizes a resolved kit for the list command.
type KitInfo struct {
	Root        string      `json:"root"`
	Name        string      `json:"name"`
	Version     string      `json:"version,omitempty"`
	Description string      `json:"description,omitempty"`
	Embedded    bool        `json:"embedded"`
	Groups      []GroupInfo `json:"groups"`
}

// GroupInfo is one group's summary within KitInfo.
type GroupInfo struct {
	Name     string   `json:"name"`
	Optional bool     `json:"optional"`
	Assets   []string `json:"assets"`
}
