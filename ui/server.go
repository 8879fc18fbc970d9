// Package ui serves a small HTTP playground for running the registered
// grammars.
package ui

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dhamidi/arc/comb"
	"github.com/dhamidi/arc/format"
	"github.com/dhamidi/arc/grammar"
	"github.com/tliron/commonlog"
)

//go:embed templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("arc.ui")

type Server struct {
	templates      *template.Template
	mux            *http.ServeMux
	defaultGrammar string
}

// ParseRequest is the body accepted by POST /parse.
type ParseRequest struct {
	Grammar string `json:"grammar"`
	Input   string `json:"input"`
}

type page struct {
	Grammars []string
	Grammar  string
	Input    string
	Output   string
	Failed   bool
}

func NewServer(defaultGrammar string) (*Server, error) {
	tmpl, err := template.ParseFS(embeddedFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		templates:      tmpl,
		mux:            http.NewServeMux(),
		defaultGrammar: defaultGrammar,
	}

	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /grammars", s.handleGrammars)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, data page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Errorf("render: %s", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, page{Grammars: grammar.Names(), Grammar: s.defaultGrammar})
}

func (s *Server) handleGrammars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(grammar.Names())
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	wantJSON := r.Header.Get("Content-Type") == "application/json"

	if wantJSON {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.Grammar = r.FormValue("grammar")
		req.Input = r.FormValue("input")
	}
	if req.Grammar == "" {
		req.Grammar = s.defaultGrammar
	}

	p, ok := grammar.Lookup(req.Grammar)
	if !ok {
		http.Error(w, "unknown grammar: "+req.Grammar, http.StatusBadRequest)
		return
	}

	state := comb.Run(p, req.Input)
	log.Debugf("parse %s: failed=%t cursor=%d", req.Grammar, state.Failed, state.Cursor)

	if wantJSON {
		w.Header().Set("Content-Type", "application/json")
		if err := format.NewJSONEncoder(w).Encode(state); err != nil {
			log.Errorf("encode: %s", err)
		}
		return
	}

	var out bytes.Buffer
	if err := format.NewTextEncoder(&out, false).Encode(state); err != nil {
		http.Error(w, "encode: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.render(w, page{
		Grammars: grammar.Names(),
		Grammar:  req.Grammar,
		Input:    req.Input,
		Output:   out.String(),
		Failed:   state.Failed,
	})
}
