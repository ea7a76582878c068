package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// compressJSON gzips JSON responses for clients that send
// Accept-Encoding: gzip.
var compressJSON = middleware.Compress(gzip.DefaultCompression, "application/json")

var gzipReaders sync.Pool

// withGzipBody inflates request bodies sent with Content-Encoding: gzip,
// so the hash check and the handlers see the plain JSON.
func (h *Handler) withGzipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := acquireGzipReader(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("invalid gzip body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		defer gzipReaders.Put(zr)

		r.Body = gzipBody{Reader: zr, raw: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

func acquireGzipReader(r *http.Request) (*gzip.Reader, error) {
	if zr, ok := gzipReaders.Get().(*gzip.Reader); ok {
		if err := zr.Reset(r.Body); err != nil {
			gzipReaders.Put(zr)
			return nil, err
		}
		return zr, nil
	}
	return gzip.NewReader(r.Body)
}

// gzipBody closes the original body; the pooled reader outlives it.
type gzipBody struct {
	*gzip.Reader
	raw io.Closer
}

func (b gzipBody) Close() error {
	return b.raw.Close()
}
