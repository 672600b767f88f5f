//go:build !numcast_release

package numcast

// DefaultMode is the [Mode] used when no [WithMode] option is given. Build
// with the numcast_release tag to default to [Release].
const DefaultMode = Debug
