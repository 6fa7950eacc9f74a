package diagfmt

import "fmt"

// PathMode selects how file paths appear in rendered diagnostics.
type PathMode uint8

const (
	PathModeAuto PathMode = iota // as loaded
	PathModeAbsolute
	PathModeRelative // relative to BaseDir
	PathModeBasename
)

var pathModeNames = [...]string{
	PathModeAuto:     "auto",
	PathModeAbsolute: "absolute",
	PathModeRelative: "relative",
	PathModeBasename: "basename",
}

func (m PathMode) String() string {
	if int(m) < len(pathModeNames) {
		return pathModeNames[m]
	}
	return fmt.Sprintf("PathMode(%d)", m)
}

// ParsePathMode maps the --diag-paths flag value to a PathMode.
func ParsePathMode(s string) (PathMode, error) {
	for i, name := range pathModeNames {
		if s == name {
			return PathMode(i), nil
		}
	}
	return PathModeAuto, fmt.Errorf("unknown path mode %q (expected: auto|absolute|relative|basename)", s)
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	BaseDir   string // для PathModeRelative
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool // добавить line/col
	PathMode         PathMode
	BaseDir          string
	Max              int // обрезка вывода, не Bag
	IncludeNotes     bool
}
