package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/katalvlaran/hexterrain/dijkstra"
	"github.com/katalvlaran/hexterrain/gridgraph"
	"github.com/katalvlaran/hexterrain/hexgrid"
)

// errGridTooLarge is returned when rows×cols exceeds Config.MaxGridCells,
// or the request body is too big to hold a grid that size.
var errGridTooLarge = errors.New("grid exceeds the configured cell limit")

// find_path body cap: the widest cell literal is a 19-digit integer or a
// quoted 16-digit hex string plus separators, well under bytesPerCell.
const (
	bytesPerCell = 32
	bodySlack    = 4 << 10
)

func (s *Server) maxBodyBytes() int64 {
	return int64(s.cfg.MaxGridCells)*bytesPerCell + bodySlack
}

// ---------------------------- generate_terrain -----------------------------

type generateRes struct {
	Grid hexgrid.WireGrid `json:"grid"`
}

// handleGenerateTerrain serves GET /api/pathfinder/generate_terrain?cols&rows&min&max.
func (s *Server) handleGenerateTerrain(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var vals [4]int
	for i, p := range []struct {
		name string
		def  int
	}{
		{"cols", hexgrid.DefaultCols},
		{"rows", hexgrid.DefaultRows},
		{"min", hexgrid.DefaultMin},
		{"max", hexgrid.DefaultMax},
	} {
		v, err := queryInt(q.Get(p.name), p.def)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_param", fmt.Sprintf("%s=%q is not an integer", p.name, q.Get(p.name)))
			return
		}
		vals[i] = v
	}
	cols, rows, lo, hi := vals[0], vals[1], vals[2], vals[3]

	if cols > 0 && rows > 0 && cols > s.cfg.MaxGridCells/rows {
		s.fail(w, r, fmt.Errorf("%w: %dx%d > %d cells", errGridTooLarge, cols, rows, s.cfg.MaxGridCells))
		return
	}
	grid, err := hexgrid.GenerateRandom(cols, rows, lo, hi)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, generateRes{Grid: grid})
}

// queryInt parses raw as an integer, returning def when raw is empty.
func queryInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// -------------------------------- find_path --------------------------------

// movesetField accepts "udlr" or ["u","d","l","r"].
type movesetField struct {
	set   bool
	moves gridgraph.Moveset
}

func (m *movesetField) UnmarshalJSON(data []byte) error {
	var letters string
	var list []string
	switch {
	case string(data) == "null":
		return nil
	case json.Unmarshal(data, &letters) == nil:
	case json.Unmarshal(data, &list) == nil:
		letters = strings.Join(list, "")
	default:
		return fmt.Errorf("%w: moveset must be a string or an array of letters", gridgraph.ErrBadMoveset)
	}
	ms, err := gridgraph.ParseMoveset(letters)
	if err != nil {
		return err
	}
	m.set, m.moves = true, ms
	return nil
}

type findPathReq struct {
	Grid        json.RawMessage     `json:"grid"`
	Origin      *gridgraph.Position `json:"origin"`
	Destination *gridgraph.Position `json:"destination"`
	Moveset     movesetField        `json:"moveset"`
	Strict      bool                `json:"strict"`
}

type findPathRes struct {
	Grid       [][]int              `json:"grid"`
	Path       [][2]int             `json:"path"`
	Directions []dijkstra.Direction `json:"directions"`
	Cost       *int64               `json:"cost"`
	Reachable  bool                 `json:"reachable"`
}

// handleFindPath decodes the wire grid, runs the planner and returns the
// decoded grid, the route as [x,y] pairs and its direction tokens.
func (s *Server) handleFindPath(w http.ResponseWriter, r *http.Request) {
	var req findPathReq
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes())
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			s.fail(w, r, fmt.Errorf("%w: body exceeds %d bytes", errGridTooLarge, tooBig.Limit))
			return
		}
		if errors.Is(err, gridgraph.ErrBadMoveset) {
			s.fail(w, r, err)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	if len(req.Grid) == 0 {
		s.fail(w, r, hexgrid.ErrNilGrid)
		return
	}

	wire, err := hexgrid.ParseWire(req.Grid)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if n := len(wire); n > 0 && len(wire[0]) > s.cfg.MaxGridCells/n {
		s.fail(w, r, fmt.Errorf("%w: %dx%d > %d cells", errGridTooLarge, len(wire[0]), n, s.cfg.MaxGridCells))
		return
	}
	costs, err := hexgrid.Decode(wire)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	opts := []dijkstra.Option{}
	if req.Origin != nil {
		opts = append(opts, dijkstra.WithOrigin(*req.Origin))
	}
	if req.Destination != nil {
		opts = append(opts, dijkstra.WithDestination(*req.Destination))
	}
	if req.Moveset.set {
		opts = append(opts, dijkstra.WithMoveset(req.Moveset.moves))
	}
	if req.Strict {
		opts = append(opts, dijkstra.WithStrictReachability())
	}
	if s.cfg.EarlyExit {
		opts = append(opts, dijkstra.WithEarlyExit())
	}

	res, err := dijkstra.LeastCostPath(costs, opts...)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := findPathRes{
		Grid:       costs,
		Path:       make([][2]int, len(res.Path)),
		Directions: res.Directions,
		Reachable:  res.Reachable,
	}
	for i, p := range res.Path {
		out.Path[i] = [2]int{p.X, p.Y}
	}
	if res.Reachable {
		c := res.Cost
		out.Cost = &c
	}
	writeJSON(w, http.StatusOK, out)
}
