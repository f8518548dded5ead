package http

import (
	"context"
	"net/http"

	"github.com/vongst/web-audio-api/internal/api"
)

type Server struct {
	api *api.API
	mux *http.ServeMux
}

func New(a *api.API) *Server {
	s := &Server{api: a, mux: http.NewServeMux()}
	s.routes()
	return s
}

// Handler exposes the mux, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.mux }

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:    addr,
		Handler: s.mux,
	}
	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
	}()
	return httpSrv.ListenAndServe()
}
