package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const SHUTDOWN_GRACE = time.Second * 10

type GetIdentifierInput struct {
	Encoded string `path:"encoded" maxLength:"64" doc:"URL-safe Base64 encoding of a 16-byte identifier"`
}

type GetIdentifierOutput struct {
	Body struct {
		Identifier string `json:"identifier"`
		Version    int    `json:"version"`
		Variant    string `json:"variant"`
	}
}

func registerRoutes(api huma.API, converter GuidConverter) {
	huma.Register(api, huma.Operation{
		OperationID: "get-identifier",
		Method:      http.MethodGet,
		Path:        "/identifiers/{encoded}",
		Summary:     "Decode a URL-safe Base64 identifier",
		Tags:        []string{"identifiers"},
	}, func(ctx context.Context, input *GetIdentifierInput) (*GetIdentifierOutput, error) {
		id, ok := converter.TryConvert(input.Encoded)
		if !ok {
			return nil, huma.Error400BadRequest(INVALID_MESSAGE)
		}
		resp := &GetIdentifierOutput{}
		resp.Body.Identifier = id.String()
		resp.Body.Version = int(id.Version())
		resp.Body.Variant = id.Variant().String()
		return resp, nil
	})
}

func newRouter(converter GuidConverter) http.Handler {
	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("guidurl", "0.1.0"))
	registerRoutes(api, converter)
	return router
}

// runAPI serves until ctx is cancelled, then drains in-flight requests.
func runAPI(ctx context.Context, converter GuidConverter, config Config) error {
	server := &http.Server{
		Addr:              config.LISTEN_ADDR,
		Handler:           newRouter(converter),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", config.LISTEN_ADDR).Msg("api listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("api shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_GRACE)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
