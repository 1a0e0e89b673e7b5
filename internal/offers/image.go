package offers

import (
	"regexp"
	"strings"
)

// PlaceholderImage is shown for offers without an image. Renderers must also
// swap to it when an image fails to load.
const PlaceholderImage = "/images/offer-placeholder.jpg"

var uriScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:`)

// ResolveImage turns an image reference into a displayable path. Absolute
// URLs and root-relative paths pass through; bare relative paths are rooted.
func ResolveImage(ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return PlaceholderImage
	case uriScheme.MatchString(ref):
		return ref
	case strings.HasPrefix(ref, "/"):
		return ref
	default:
		return "/" + ref
	}
}
