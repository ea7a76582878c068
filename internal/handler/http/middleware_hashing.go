package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-offline-sync/internal/app"
	"github.com/MKhiriev/go-offline-sync/internal/logger"
	"github.com/MKhiriev/go-offline-sync/internal/utils"
)

const hashHeader = utils.BodyHashHeader

// withHashCheck verifies the HashSHA256 header against the request body.
// Requests without the header pass through, as does everything when no
// hash key is configured.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received := r.Header.Get(hashHeader)
		if !h.signer.Enabled() || received == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Msg("failed to read request body")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.signer.Verify(body, received) {
			log.Error().
				Str("hash from request", received).
				Str("hashed body", h.signer.Sign(body)).
				Msg("hashes are not equal")
			http.Error(w, app.MsgHashMismatch, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
