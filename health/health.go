// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// StartHealthEndpoint serves the liveness probe on its own listener so
// orchestration checks never contend with the bridging API.
func StartHealthEndpoint(port uint16) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	log.Info().Msgf("Serving health endpoint on port %d", port)
	if err := srv.ListenAndServe(); err != nil {
		log.Err(err).Msg("Health server stopped")
	}
}
