package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/bond"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/cache"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/errors"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/plan"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/render"
	"github.com/sahaja-kanuri/masonry-wall-simulator/pkg/session"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string
}

// newServeCmd creates the serve command: an HTTP API exposing planning
// sessions. Each session is one wall; placements are serialized per
// session, so concurrent clients cannot interleave half-applied state.
func newServeCmd(profile *Profile) *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.addr == "" {
				opts.addr = profile.Serve.Addr
			}
			return runServe(cmd.Context(), *profile, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default :8080)")
	return cmd
}

// server holds the shared state of serve mode.
type server struct {
	profile   Profile
	registry  *session.Registry
	snapshots session.SnapshotStore
	svgCache  cache.Cache
	keyer     cache.Keyer
}

func runServe(ctx context.Context, profile Profile, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	snapshots, err := newSnapshotStore(ctx, profile)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	s := &server{
		profile:   profile,
		registry:  session.NewRegistry(),
		snapshots: snapshots,
		svgCache:  cache.NewMemoryCache(),
		keyer:     cache.NewDefaultKeyer(),
	}

	srv := &http.Server{Addr: opts.addr, Handler: s.routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving planning API", "addr", opts.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// routes builds the HTTP router.
func (s *server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Get("/", s.handleListSessions)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Post("/brick", s.handlePlaceBrick)
			r.Post("/stride", s.handlePlaceStride)
			r.Post("/bond", s.handleSwitchBond)
			r.Get("/svg", s.handleGetSVG)
		})
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

// newSnapshotStore selects Redis when configured, in-memory otherwise.
func newSnapshotStore(ctx context.Context, profile Profile) (session.SnapshotStore, error) {
	if profile.Serve.RedisAddr == "" {
		return session.NewMemoryStore(), nil
	}
	return session.NewRedisStore(ctx, session.RedisConfig{
		Addr:     profile.Serve.RedisAddr,
		Password: profile.Serve.RedisPassword,
		DB:       profile.Serve.RedisDB,
	})
}

// =============================================================================
// Handlers
// =============================================================================

type createSessionRequest struct {
	Bond   string  `json:"bond"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (s *server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}
	if req.Bond == "" {
		req.Bond = s.profile.Wall.Bond
	}

	t, err := bond.Parse(req.Bond)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	p, err := plan.New(plan.Options{
		Width:  req.Width,
		Height: req.Height,
		Bond:   t,
		Logger: loggerFromContext(r.Context()),
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sess := s.registry.Create(p)
	s.saveSnapshot(r.Context(), sess)

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":    sess.ID,
		"state": sess.Telemetry(),
	})
}

func (s *server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"sessions": s.registry.IDs()})
}

func (s *server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Telemetry())
}

func (s *server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.registry.Delete(id)
	_ = s.snapshots.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handlePlaceBrick(w http.ResponseWriter, r *http.Request) {
	s.advance(w, r, func(p *plan.Planner) bool { return p.PlaceOne() })
}

func (s *server) handlePlaceStride(w http.ResponseWriter, r *http.Request) {
	s.advance(w, r, func(p *plan.Planner) bool { return p.PlaceStride() })
}

// advance runs one placement step under the session lock and returns
// the refreshed state.
func (s *server) advance(w http.ResponseWriter, r *http.Request, step func(*plan.Planner) bool) {
	sess, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var placed bool
	sess.With(func(p *plan.Planner) { placed = step(p) })
	s.saveSnapshot(r.Context(), sess)

	writeJSON(w, http.StatusOK, map[string]any{
		"placed": placed,
		"state":  sess.Telemetry(),
	})
}

type switchBondRequest struct {
	Bond string `json:"bond"`
}

func (s *server) handleSwitchBond(w http.ResponseWriter, r *http.Request) {
	sess, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var req switchBondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "invalid request body"))
		return
	}
	t, err := bond.Parse(req.Bond)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	var resetErr error
	sess.With(func(p *plan.Planner) { resetErr = p.Reset(t) })
	if resetErr != nil {
		writeError(w, http.StatusInternalServerError, resetErr)
		return
	}
	s.saveSnapshot(r.Context(), sess)

	writeJSON(w, http.StatusOK, sess.Telemetry())
}

func (s *server) handleGetSVG(w http.ResponseWriter, r *http.Request) {
	sess, err := s.registry.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	t := sess.Telemetry()
	keyer := cache.NewScopedKeyer(s.keyer, "session:"+sess.ID+":")
	key := keyer.RenderKey(t.Pattern, t.Width, t.Height, t.Placed, t.Strides)

	if data, ok, err := s.svgCache.Get(r.Context(), key); err == nil && ok {
		w.Header().Set("Content-Type", "image/svg+xml")
		_, _ = w.Write(data)
		return
	}

	svg := render.RenderSVG(t, render.WithGrid(), render.WithStats(), render.WithRobot())
	_ = s.svgCache.Set(r.Context(), key, svg, time.Hour)

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg)
}

// saveSnapshot persists the session's current telemetry. Snapshot
// failures are logged and ignored; the live planner stays authoritative.
func (s *server) saveSnapshot(ctx context.Context, sess *session.Session) {
	if err := s.snapshots.Save(ctx, sess.ID, sess.Telemetry()); err != nil {
		loggerFromContext(ctx).Warn("failed to save session snapshot", "session", sess.ID, "err", err)
	}
}

// =============================================================================
// Response helpers
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{
		"error": errors.UserMessage(err),
		"code":  string(errors.GetCode(err)),
	})
}
