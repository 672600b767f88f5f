//go:build numcast_release

package numcast

// DefaultMode is the [Mode] used when no [WithMode] option is given. The
// numcast_release build tag selects [Release].
const DefaultMode = Release
