package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/katalvlaran/hexterrain/dijkstra"
	"github.com/katalvlaran/hexterrain/gridgraph"
	"github.com/katalvlaran/hexterrain/hexgrid"
)

type errorRes struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// classify maps core errors onto an HTTP status and a stable error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, hexgrid.ErrDecode):
		return http.StatusBadRequest, "decode_error"
	case errors.Is(err, hexgrid.ErrNilGrid),
		errors.Is(err, hexgrid.ErrEmptyRow),
		errors.Is(err, hexgrid.ErrRaggedGrid),
		errors.Is(err, hexgrid.ErrNotMatrix),
		errors.Is(err, dijkstra.ErrNilGrid),
		errors.Is(err, gridgraph.ErrEmptyGrid),
		errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrNegativeCost):
		return http.StatusBadRequest, "bad_grid"
	case errors.Is(err, gridgraph.ErrOutOfBounds):
		return http.StatusBadRequest, "out_of_bounds"
	case errors.Is(err, gridgraph.ErrBadMoveset):
		return http.StatusBadRequest, "bad_moveset"
	case errors.Is(err, hexgrid.ErrBadParams):
		return http.StatusBadRequest, "bad_param"
	case errors.Is(err, errGridTooLarge):
		return http.StatusRequestEntityTooLarge, "grid_too_large"
	case errors.Is(err, dijkstra.ErrUnreachable):
		return http.StatusUnprocessableEntity, "unreachable"
	case errors.Is(err, dijkstra.ErrCostOverflow):
		return http.StatusUnprocessableEntity, "cost_overflow"
	}
	return http.StatusInternalServerError, "internal"
}

// fail classifies err, logs it at a level matching its status and writes
// the JSON error body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	ev := s.log.Debug()
	if status >= http.StatusInternalServerError {
		ev = s.log.Error()
	}
	ev.Err(err).Str("request_id", requestIDFrom(r.Context())).Str("code", code).Msg("request failed")
	writeError(w, status, code, err.Error())
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, errorRes{Error: code, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
