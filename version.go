package pixvault

import "fmt"

// Semantic version of the pixvault server.
var (
	major = 0
	minor = 1
	patch = 0
)

func StringVersion() string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}
