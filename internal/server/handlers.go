package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/rnaviz/pkg/errors"
	"github.com/matzehuels/rnaviz/pkg/pipeline"
	"github.com/matzehuels/rnaviz/pkg/theme"
)

// RenderRequest is the body of POST /v1/render. Option fields left out
// take the server defaults.
type RenderRequest struct {
	Input string `json:"input"`
	pipeline.Options
}

type themeInfo struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Line       string `json:"line"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

func (s *Server) handleThemes(w http.ResponseWriter, _ *http.Request) {
	names := theme.Names()
	out := make([]themeInfo, len(names))
	for i, name := range names {
		th, _ := theme.Lookup(name)
		out[i] = themeInfo{Name: name, Background: th.Background.Hex(), Line: th.Line.Hex()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRender(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), req.Input, req.Options)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", pipeline.ContentTypes[res.Format])
	h.Set("Content-Length", strconv.Itoa(len(res.Artifact)))
	if res.CacheHit {
		h.Set("X-Cache", "hit")
	} else {
		h.Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(res.Artifact)
}

// decodeRender reads the request body on top of the server defaults.
func (s *Server) decodeRender(w http.ResponseWriter, r *http.Request) (RenderRequest, error) {
	req := RenderRequest{Options: s.defaults}
	if d := s.defaults.BgOpacity; d != nil {
		req.BgOpacity = pipeline.Opacity(*d)
	}
	req.Logger = nil

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return req, nil
}
