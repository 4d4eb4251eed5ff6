package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/drawnet/drawnet/pkg/buildinfo"
	"github.com/drawnet/drawnet/pkg/cache"
	"github.com/drawnet/drawnet/pkg/gallery"
	"github.com/drawnet/drawnet/pkg/layout"
	"github.com/drawnet/drawnet/pkg/observability"
	"github.com/drawnet/drawnet/pkg/render"
	"github.com/drawnet/drawnet/pkg/render/nodelink"
	"github.com/drawnet/drawnet/pkg/render/sink"
)

// artifactFormats lists the formats the artifact endpoint serves, in
// the order the index reports them.
var artifactFormats = []string{
	render.FormatSVG,
	render.FormatPNG,
	render.FormatPDF,
	render.FormatJSON,
	render.FormatDOT,
}

var contentTypes = map[string]string{
	render.FormatSVG:  "image/svg+xml",
	render.FormatPNG:  "image/png",
	render.FormatPDF:  "application/pdf",
	render.FormatJSON: "application/json",
	render.FormatDOT:  "text/vnd.graphviz",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// sceneInfo is one entry of the gallery index.
type sceneInfo struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Formats []string `json:"formats"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	key := s.keyer.IndexKey()
	if data, hit := s.cacheGet(r, key, "index"); hit {
		writeRaw(w, "application/json", data)
		return
	}

	scenes := gallery.All()
	index := make([]sceneInfo, 0, len(scenes))
	for _, sc := range scenes {
		index = append(index, sceneInfo{Name: sc.Name, Title: sc.Title, Formats: artifactFormats})
	}
	data, err := json.Marshal(index)
	if err != nil {
		http.Error(w, fmt.Sprintf("encode index: %v", err), http.StatusInternalServerError)
		return
	}

	s.cacheSet(ctx, key, "index", data)
	writeRaw(w, "application/json", data)
}

func (s *Server) handleArtifact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	format := chi.URLParam(r, "format")

	ct, ok := contentTypes[format]
	if !ok {
		http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusNotFound)
		return
	}
	scene, err := gallery.Lookup(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	opts := artifactOpts(format, r.URL.Query())
	key := s.keyer.ArtifactKey(name, opts)
	if data, hit := s.cacheGet(r, key, "artifact"); hit {
		writeArtifact(w, ct, data, s.ttl)
		return
	}

	data, err := s.renderArtifact(r, scene, opts)
	if err != nil {
		s.log.Error("render failed", "scene", name, "format", format, "error", err, "request_id", RequestID(ctx))
		http.Error(w, fmt.Sprintf("render %s: %v", name, err), http.StatusInternalServerError)
		return
	}

	s.cacheSet(ctx, key, "artifact", data)
	writeArtifact(w, ct, data, s.ttl)
}

// artifactOpts extracts the query parameters that influence rendering.
func artifactOpts(format string, q url.Values) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	if w, err := strconv.ParseFloat(q.Get("width"), 64); err == nil && w > 0 {
		opts.Width = w
	}
	if d, err := strconv.ParseBool(q.Get("detailed")); err == nil {
		opts.Detailed = d
	}
	return opts
}

// renderArtifact builds the scene and encodes it, reporting both phases
// to the registered render hooks.
func (s *Server) renderArtifact(r *http.Request, scene *gallery.Scene, opts cache.ArtifactKeyOpts) ([]byte, error) {
	ctx := r.Context()

	start := time.Now()
	observability.Render().OnBuildStart(ctx, scene.Name)
	d, ropts, err := scene.Build()
	var shapes int
	if err == nil {
		shapes = len(d.Shapes())
	}
	observability.Render().OnBuildComplete(ctx, scene.Name, shapes, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	start = time.Now()
	observability.Render().OnRenderStart(ctx, scene.Name, opts.Format)
	data, err := encodeArtifact(d, ropts, opts)
	observability.Render().OnRenderComplete(ctx, scene.Name, opts.Format, len(data), time.Since(start), err)
	return data, err
}

func encodeArtifact(d layout.Diagram, ropts render.Options, opts cache.ArtifactKeyOpts) ([]byte, error) {
	switch opts.Format {
	case render.FormatSVG:
		var so []sink.SVGOption
		if opts.Width > 0 {
			so = append(so, sink.WithWidth(opts.Width))
		}
		return sink.RenderSVG(d, ropts, so...)
	case render.FormatPNG:
		// Rasterized directly so the server has no external tool
		// dependency.
		var ro []sink.RasterOption
		if opts.Width > 0 {
			ro = append(ro, sink.WithRasterWidth(int(opts.Width)))
		}
		return sink.RenderRaster(d, ropts, ro...)
	case render.FormatPDF:
		return sink.RenderPDF(d, ropts)
	case render.FormatJSON:
		return sink.RenderJSON(d, ropts)
	case render.FormatDOT:
		dot, err := nodelink.ToDOT(d, nodelink.Options{Detailed: opts.Detailed})
		if err != nil {
			return nil, err
		}
		return []byte(dot), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", opts.Format)
	}
}

// cacheGet looks up key, treating backend errors as misses.
func (s *Server) cacheGet(r *http.Request, key, keyType string) ([]byte, bool) {
	ctx := r.Context()
	data, hit, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.log.Warn("cache get failed", "key", key, "error", err)
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	case hit:
		observability.Cache().OnCacheHit(ctx, keyType)
		return data, true
	default:
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
}

// cacheSet stores data under key, logging instead of failing the
// request when the backend is down.
func (s *Server) cacheSet(ctx context.Context, key, keyType string, data []byte) {
	if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
		s.log.Warn("cache set failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

func writeRaw(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Write(data)
}

func writeArtifact(w http.ResponseWriter, contentType string, data []byte, ttl time.Duration) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(ttl.Seconds())))
	writeRaw(w, contentType, data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
