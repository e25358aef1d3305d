// Package httpapi serves the catalog and the calculators over JSON.
package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/aalvaropc/calckit/internal/buildinfo"
	"github.com/aalvaropc/calckit/internal/catalog"
	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/infra/metrics"
)

const gracefulShutdownTimeout = 5 * time.Second

// Calculator is the application service behind the calculate endpoints.
type Calculator interface {
	Execute(ctx context.Context, id domain.CalculatorID, inputs domain.InputSet) (domain.Result, error)
}

// Availability reports whether an identifier has a formula behind it.
type Availability interface {
	Has(id domain.CalculatorID) bool
}

type Deps struct {
	Calculator   Calculator
	Availability Availability
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
}

type Server struct {
	calc      Calculator
	available Availability
	metrics   *metrics.Metrics
	log       *slog.Logger
}

func New(d Deps) *Server {
	s := &Server{
		calc:      d.Calculator,
		available: d.Availability,
		metrics:   d.Metrics,
		log:       d.Logger,
	}
	if s.log == nil {
		s.log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return s
}

// Router builds the HTTP handler. CORS origins come from cfg.
func (s *Server) Router(cfg Config) http.Handler {
	r := chi.NewRouter()

	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}
	r.Use(
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
		middleware.RequestID,
		requestLogger(s.log),
		middleware.Recoverer,
		middleware.RequestSize(1<<20),
		render.SetContentType(render.ContentTypeJSON),
	)

	r.Get("/health", s.health)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/categories", s.listCategories)
		r.Get("/calculators", s.listCalculators)
		r.Get("/calculators/{id}", s.getCalculator)
		r.Post("/calculators/{id}/calculate", s.calculate)
		r.Post("/expression", s.expression)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, cfg Config) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Router(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		ctxTimeout, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		_ = srv.Shutdown(ctxTimeout)
		s.log.Info("http.shutdown", "addr", cfg.Addr)
	}()

	s.log.Info("http.listen", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return &domain.OpError{Op: "httpapi.listen", Kind: domain.KindExecution, Path: cfg.Addr, Err: err}
	}
	return nil
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := catalog.Search(r.URL.Query().Get("q"))
	if cats == nil {
		cats = []domain.Category{}
	}
	render.JSON(w, r, cats)
}

// listCalculators filters by ?q=, ?category= and ?featured=true.
func (s *Server) listCalculators(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	category := strings.TrimSpace(q.Get("category"))
	featured := q.Get("featured") == "true"

	out := []domain.Descriptor{}
	for _, d := range catalog.All() {
		if category != "" && d.Category != category {
			continue
		}
		if featured && !d.Featured {
			continue
		}
		if !catalog.Matches(d, query) {
			continue
		}
		out = append(out, d)
	}
	render.JSON(w, r, out)
}

func (s *Server) getCalculator(w http.ResponseWriter, r *http.Request) {
	id := domain.CalculatorID(chi.URLParam(r, "id"))
	d, err := catalog.Lookup(id)
	if err != nil {
		_ = render.Render(w, r, errCalculation(err))
		return
	}

	fields := catalog.Form(id)
	if fields == nil {
		fields = []domain.Field{}
	}
	render.JSON(w, r, calculatorResponse{
		Descriptor: d,
		Fields:     fields,
		Available:  s.available != nil && s.available.Has(id),
	})
}

func (s *Server) calculate(w http.ResponseWriter, r *http.Request) {
	id := domain.CalculatorID(chi.URLParam(r, "id"))

	var req calculateRequest
	if err := render.Bind(r, &req); err != nil {
		_ = render.Render(w, r, errBadRequest(err))
		return
	}
	inputs, err := req.inputSet()
	if err != nil {
		_ = render.Render(w, r, errBadRequest(err))
		return
	}

	s.respond(w, r, id, inputs)
}

func (s *Server) expression(w http.ResponseWriter, r *http.Request) {
	var req expressionRequest
	if err := render.Bind(r, &req); err != nil {
		_ = render.Render(w, r, errBadRequest(err))
		return
	}

	s.respond(w, r, domain.CalcScientific, domain.InputSet{"expression": req.Expression})
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, id domain.CalculatorID, inputs domain.InputSet) {
	res, err := s.calc.Execute(r.Context(), id, inputs)
	if err != nil {
		_ = render.Render(w, r, errCalculation(err))
		return
	}
	render.JSON(w, r, domain.Wrap(id, res))
}

// requestLogger logs one http.request event per request.
func requestLogger(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				l.Info("http.request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
