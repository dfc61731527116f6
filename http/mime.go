package http

import (
	"fmt"
	gohttp "net/http"
	"strings"
)

const MIME_JSON = "application/json"
const MIME_TEXT = "text/plain"
const CONTENT_TYPE = "Content-Type"

// HasContentType matches on the media type alone, ignoring parameters such
// as charset.
func HasContentType(header gohttp.Header, contentType string) bool {
	headers, ok := header[CONTENT_TYPE]

	if !ok {
		return false
	}

	for _, h := range headers {
		mediaType := strings.TrimSpace(strings.Split(h, ";")[0])

		if mediaType == contentType {
			return true
		}
	}

	return false
}

func incorrectContentType(status int, header gohttp.Header) error {
	return fmt.Errorf("%d response had incorrect content type, was: %v", status, header[CONTENT_TYPE])
}
