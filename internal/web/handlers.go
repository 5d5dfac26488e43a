package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/taxamatch/taxamatch"
)

type matchResponse struct {
	Query   string   `json:"query"`
	Tag     string   `json:"tag"`
	Results []string `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// handleMatch serves GET /api/match?tag=<tag>&query=<name>, running the
// requested matcher variant against the service's oracle.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	tag := r.URL.Query().Get("tag")
	if tag == "" {
		tag = string(taxamatch.TagHybrid)
	}

	cfg := s.baseMatcherConfig()
	m, err := taxamatch.New(taxamatch.Tag(tag), cfg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results, err := m.Match(query)
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{Query: query, Tag: tag, Results: results})
}

type neighborhoodResponse struct {
	Query    string   `json:"query"`
	Mode     string   `json:"mode"`
	Exact    []string `json:"exact,omitempty"`
	Wildcard []string `json:"wildcard,omitempty"`
}

// handleNeighborhood serves GET /api/neighborhood?query=<name>&mode=full|wildcard|partial&k=<n>,
// exposing the neighborhood generator directly without going through an oracle.
func (s *Server) handleNeighborhood(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "full"
	}
	k := 1
	if raw := r.URL.Query().Get("k"); raw != "" {
		if parsed, err := parsePositiveInt(raw); err == nil {
			k = parsed
		}
	}

	alphabet := taxamatch.DefaultAlphabet
	switch mode {
	case "full":
		nhood, err := taxamatch.GenerateFull(query, k, alphabet, 0)
		if err != nil {
			writeError(w, statusForError(err), err)
			return
		}
		writeJSON(w, http.StatusOK, neighborhoodResponse{Query: query, Mode: mode, Exact: nhood})
	case "wildcard":
		exact, wildcard, err := taxamatch.GenerateK1Wildcard(query, alphabet)
		if err != nil {
			writeError(w, statusForError(err), err)
			return
		}
		writeJSON(w, http.StatusOK, neighborhoodResponse{Query: query, Mode: mode, Exact: exact, Wildcard: wildcard})
	case "partial":
		exact, wildcard, err := taxamatch.GenerateK1PartialWildcard(query, alphabet)
		if err != nil {
			writeError(w, statusForError(err), err)
			return
		}
		writeJSON(w, http.StatusOK, neighborhoodResponse{Query: query, Mode: mode, Exact: exact, Wildcard: wildcard})
	default:
		writeError(w, http.StatusBadRequest, errUnknownMode(mode))
	}
}

// handlePing serves GET /api/ping, reporting the database connection's
// health.
func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(); err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) baseMatcherConfig() taxamatch.Config {
	return taxamatch.Config{
		Oracle:  s.oracle,
		Table:   s.config.Matcher.Table,
		Column:  s.config.Matcher.Column,
		QCutoff: s.config.Matcher.QCutoff,
	}
}

func statusForError(err error) int {
	taxErr, ok := err.(*taxamatch.Error)
	if !ok {
		return http.StatusInternalServerError
	}
	switch taxErr.Kind {
	case taxamatch.EmptyQuery, taxamatch.InvalidConfig, taxamatch.ResourceExhausted:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errUnknownMode(mode string) error {
	return fmt.Errorf("unknown neighborhood mode %q", mode)
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid positive integer %q", s)
	}
	return n, nil
}
