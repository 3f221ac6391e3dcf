package blasbridge

import (
	"fmt"
	"runtime/debug"
)

const root = "github.com/LynnColeArt/blasbridge"

// Version returns the module version and checksum of blasbridge as recorded
// in the importing binary. The returned values are only valid in binaries
// built with module support.
//
// If the importing module replaces blasbridge, the replacement is reported
// in the version as
//
//	"version=>[replace-path] [replace-version]"
//
// and the replacement checksum is returned in place of the original.
//
// The exact version format returned by Version may change in future.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path != root {
			continue
		}
		if m.Replace != nil {
			switch {
			case m.Replace.Version != "" && m.Replace.Path != "":
				return fmt.Sprintf("%s=>%s %s", m.Version, m.Replace.Path, m.Replace.Version), m.Replace.Sum
			case m.Replace.Version != "":
				return fmt.Sprintf("%s=>%s", m.Version, m.Replace.Version), m.Replace.Sum
			case m.Replace.Path != "":
				return fmt.Sprintf("%s=>%s", m.Version, m.Replace.Path), m.Replace.Sum
			default:
				return m.Version + "*", m.Sum + "*"
			}
		}
		return m.Version, m.Sum
	}
	return "", ""
}
