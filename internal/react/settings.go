// Package react carries the shared framework settings every rule can
// consult: the JSX pragma, the optional createClass factory alias, and the
// project's React version when it is known.
package react

// DefaultPragma is assumed when the config does not override it.
const DefaultPragma = "React"

type Settings struct {
	// Pragma is the namespace components are built against, e.g. "React"
	// in React.createElement. Upstream eslint-plugin-react calls this the
	// pragma setting.
	Pragma string

	// CreateClass is an optional bare factory alias, e.g. "createClass"
	// when the project does `import {createClass} from 'react'`.
	CreateClass string

	// Version is the project's React version, nil when unknown.
	Version *Version
}

func DefaultSettings() Settings {
	return Settings{Pragma: DefaultPragma}
}

// Normalize fills defaults for zero values so rules never have to.
func (s Settings) Normalize() Settings {
	if s.Pragma == "" {
		s.Pragma = DefaultPragma
	}
	return s
}
