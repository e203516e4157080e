package maps

import "net/url"

const embedBaseURL = "https://www.google.com/maps/embed/v1/place"

// EmbedURL builds the map-embed URL for a place name. An empty location maps
// to the wildcard query, which the embed API renders as a world view; this is
// the page's startup state. The location is query-escaped but otherwise passed
// through unvalidated: resolving odd place strings is the map provider's job.
func EmbedURL(key, location string) string {
	if location == "" {
		location = "*"
	}
	q := url.Values{}
	q.Set("key", key)
	q.Set("q", location)
	return embedBaseURL + "?" + q.Encode()
}
