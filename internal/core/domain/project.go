package domain

// BuilderID identifies the cargokit automatic builder in a project's build spec.
const BuilderID = "ch.trai.cargokit.builder"

// BuildSpec is the ordered list of builder identifiers attached to a project.
type BuildSpec []string

// Has reports whether id is attached.
func (s BuildSpec) Has(id string) bool {
	return s.index(id) >= 0
}

// Add appends id unless it is already attached.
func (s BuildSpec) Add(id string) BuildSpec {
	if s.Has(id) {
		return s
	}
	return append(s, id)
}

// Remove returns the spec without any occurrence of id, preserving order.
func (s BuildSpec) Remove(id string) BuildSpec {
	out := make(BuildSpec, 0, len(s))
	for _, b := range s {
		if b != id {
			out = append(out, b)
		}
	}
	return out
}

func (s BuildSpec) index(id string) int {
	for i, b := range s {
		if b == id {
			return i
		}
	}
	return -1
}

// ProjectDescription is the persisted project configuration owned by the host.
type ProjectDescription struct {
	Name     string    `yaml:"name,omitempty"`
	Builders BuildSpec `yaml:"builders"`
}

// Manifest is the subset of Cargo.toml cargokit inspects.
type Manifest struct {
	Path    string
	Package string
	Version string
	Members []string
}

// IsWorkspace reports whether the manifest declares a cargo workspace.
func (m Manifest) IsWorkspace() bool {
	return len(m.Members) > 0
}
