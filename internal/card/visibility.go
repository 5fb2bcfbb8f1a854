package card

import "strings"

// PublicPathPrefix is the route prefix the public card view lives under.
const PublicPathPrefix = "/c/"

// PubliclyViewable reports whether a public view is reachable: the card
// must have been saved at least once and carry the published flag.
func PubliclyViewable(id string, published bool) bool {
	return id != "" && published
}

// PublicURL returns the public view URL for a card, or "" when the card is
// not publicly viewable.
func PublicURL(baseURL, id string, published bool) string {
	if !PubliclyViewable(id, published) {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + PublicPathPrefix + id
}
