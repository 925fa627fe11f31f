package rest

import (
	"mime"
	"net/http"
)

// writeMediaTypes are the Content-Types accepted on request bodies.
var writeMediaTypes = map[string]bool{
	"application/json":                   true,
	"application/vnd.draftstore.v3+json": true,
}

// acceptsBody reports whether the request Content-Type is a supported JSON
// media type. Parameters such as charset are ignored.
func acceptsBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return writeMediaTypes[mediaType]
}
