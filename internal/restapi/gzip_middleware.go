package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// GzipMiddleware transparently compresses responses for clients that send
// Accept-Encoding: gzip. Small responses are passed through uncompressed.
func GzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
