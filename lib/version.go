package lib

// Banner the banner
const Banner = `
 _     _                _ _   
| |__ (_)___  ___ _   _(_) |_ 
| '_ \| / __|/ __| | | | | __|
| |_) | \__ \ (__| |_| | | |_ 
|_.__/|_|___/\___|\__,_|_|\__|
`

var (
	// Version is the current version.
	Version = "(untracked)"
	// CommitSHA is the commit sha.
	CommitSHA = "(unknown)"
)
