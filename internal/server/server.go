// Package server is the HTTP front end: the full page plus the HTMX fragment
// endpoints for the cube and the project document viewers.
package server

import (
	"context"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/cube"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/render"
	"github.com/Zachkp/portfolio/internal/viewer"
)

const shutdownTimeout = 5 * time.Second

// Options wires a Server. Store, Logger and Metrics are required.
type Options struct {
	Addr      string
	AssetsDir string
	Site      render.Site
	Store     *content.Store
	Logger    *zap.Logger
	Metrics   *metrics.Collector
}

type Server struct {
	engine   *gin.Engine
	renderer *render.Renderer
	store    *content.Store
	site     render.Site
	logger   *zap.Logger
	metrics  *metrics.Collector
	addr     string
}

// New builds the gin engine and registers every route.
func New(opts Options) (s *Server, err error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	s = &Server{
		engine:   gin.New(),
		renderer: renderer,
		store:    opts.Store,
		site:     opts.Site,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		addr:     opts.Addr,
	}

	// Page and fragments are executed by gin from the renderer's template set.
	s.engine.SetHTMLTemplate(renderer.Template())

	s.engine.Use(gin.Recovery(), requestLogger(opts.Logger), requestMetrics(opts.Metrics))

	css, err := fs.Sub(staticFS, "static")
	if err != nil {
		err = errors.Wrap(err, "failed to open embedded static files")
		return nil, err
	}
	s.engine.StaticFS("/static", http.FS(css))
	if opts.AssetsDir != "" {
		s.engine.Static("/assets", opts.AssetsDir)
	}

	// Home page route
	s.engine.GET("/", s.handleIndex)

	// HTMX fragments
	s.engine.GET("/cube", s.handleCube)
	s.engine.GET("/projects/:index/card", s.handleProjectCard)

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	return s, nil
}

// Handler exposes the engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Portfolio server listening", zap.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down portfolio server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "http server shutdown")
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server stopped")
	}
	return nil
}

func (s *Server) handleIndex(c *gin.Context) {
	s.html(c, render.SectionPage, s.renderer.PageData(s.site, s.store.Current()))
}

// handleCube applies one pointer event to the state the client sent and
// returns the cube in its new state.
func (s *Server) handleCube(c *gin.Context) {
	event, err := cube.ParseEvent(c.Query("event"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	var state cube.State
	state.Hovered, err = parseFlag(c.Query("hovered"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid hovered flag")
		return
	}
	state.Clicked, err = parseFlag(c.Query("clicked"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid clicked flag")
		return
	}

	s.html(c, render.SectionCube, s.renderer.CubeData(state.Handle(event)))
}

// handleProjectCard re-renders one project card with its document viewer in
// the requested state. Other cards are untouched.
func (s *Server) handleProjectCard(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	projects := s.store.Current().Projects
	if err != nil || index < 0 || index >= len(projects) {
		c.String(http.StatusNotFound, "project not found")
		return
	}

	state, err := viewer.ParseState(c.Query("document"))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	s.html(c, render.SectionProjectCard, s.renderer.ProjectCardData(index, projects[index], state))
}

// html executes one section template through gin and counts it. gin records
// template errors on the context and aborts.
func (s *Server) html(c *gin.Context, section string, data any) {
	c.HTML(http.StatusOK, section, data)
	if len(c.Errors) > 0 {
		s.logger.Error("Render failed",
			zap.String("section", section),
			zap.String("path", c.Request.URL.Path),
			zap.Error(c.Errors.Last()),
		)
		return
	}
	s.metrics.ObserveSection(section)
}

func parseFlag(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}
