package trackview

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Waypoint is a named point in the network topology (typically a station)
// that tracks connect.
type Waypoint struct {
	ID        string
	Name      string
	Position  Vec2
	Platforms int
}

// Track is an immutable polyline connecting two waypoints. Tracks are looked
// up by the unordered pair of waypoint ids, so a track registered as A→B also
// resolves B→A.
type Track struct {
	A, B       string
	Points     []Vec2
	Kind       string  // "main", "electrified", ...
	Congestion float64 // 0..1, display hint only
}

// pairKey is the canonical (ordered) form of an unordered waypoint pair.
type pairKey struct {
	lo, hi string
}

func pairOf(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Network is the path registry: waypoints by id and tracks by unordered
// waypoint pair. Tracks are registered at initialization or on topology
// change, never per tick.
type Network struct {
	waypoints map[string]Waypoint
	tracks    map[pairKey]Track
}

// NewNetwork creates an empty network.
func NewNetwork() *Network {
	return &Network{
		waypoints: make(map[string]Waypoint),
		tracks:    make(map[pairKey]Track),
	}
}

// AddWaypoint registers a waypoint, replacing any previous one with the same id.
func (n *Network) AddWaypoint(w Waypoint) {
	n.waypoints[w.ID] = w
}

// Waypoint returns the waypoint with the given id.
func (n *Network) Waypoint(id string) (Waypoint, bool) {
	w, ok := n.waypoints[id]
	return w, ok
}

// AddTrack registers a track under the unordered pair of its endpoints.
// Tracks with fewer than 1 point are ignored.
func (n *Network) AddTrack(t Track) {
	if len(t.Points) == 0 {
		return
	}
	n.tracks[pairOf(t.A, t.B)] = t
}

// Track returns the registered track for the unordered pair (a, b).
func (n *Network) Track(a, b string) (Track, bool) {
	t, ok := n.tracks[pairOf(a, b)]
	return t, ok
}

// ResolvePath returns the polyline connecting waypoints a and b.
//
// A registered track wins. With no registry entry, the fallback is a minimal
// two-point path between the waypoints' known positions. If neither source
// can resolve the pair, ResolvePath returns nil and callers hold the entity
// at its last known position.
func (n *Network) ResolvePath(a, b string) []Vec2 {
	if t, ok := n.tracks[pairOf(a, b)]; ok {
		return t.Points
	}
	wa, okA := n.waypoints[a]
	wb, okB := n.waypoints[b]
	if okA && okB {
		return []Vec2{wa.Position, wb.Position}
	}
	return nil
}

// --- GeoJSON topology loading ---

// The dashboard backend serves track geometry as a GeoJSON FeatureCollection
// of LineString features whose "id" property names the waypoint pair, e.g.
// "MSH-ADI". Coordinates are [x, y] pairs in world units.

type geoFeatureCollection struct {
	Type     string       `json:"type"`
	Features []geoFeature `json:"features"`
}

type geoFeature struct {
	Type       string `json:"type"`
	Properties struct {
		ID         string  `json:"id"`
		Type       string  `json:"type"`
		Congestion float64 `json:"congestion"`
	} `json:"properties"`
	Geometry struct {
		Type        string      `json:"type"`
		Coordinates [][]float64 `json:"coordinates"`
	} `json:"geometry"`
}

// LoadGeoJSON parses a GeoJSON FeatureCollection and registers each
// LineString feature as a track. Non-LineString features are skipped.
// Waypoints are not created here; register them separately so the two-point
// fallback and hold-position behavior have known positions.
func (n *Network) LoadGeoJSON(data []byte) error {
	var fc geoFeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("trackview: failed to parse tracks GeoJSON: %w", err)
	}
	if fc.Type != "FeatureCollection" {
		return fmt.Errorf("trackview: unexpected GeoJSON type %q", fc.Type)
	}

	for _, f := range fc.Features {
		if f.Geometry.Type != "LineString" {
			continue
		}
		a, b, ok := strings.Cut(f.Properties.ID, "-")
		if !ok {
			return fmt.Errorf("trackview: track id %q is not a waypoint pair", f.Properties.ID)
		}
		points := make([]Vec2, 0, len(f.Geometry.Coordinates))
		for _, c := range f.Geometry.Coordinates {
			if len(c) < 2 {
				return fmt.Errorf("trackview: track %q has a malformed coordinate", f.Properties.ID)
			}
			points = append(points, Vec2{X: c[0], Y: c[1]})
		}
		n.AddTrack(Track{
			A:          a,
			B:          b,
			Points:     points,
			Kind:       f.Properties.Type,
			Congestion: f.Properties.Congestion,
		})
	}
	return nil
}

// NearestWaypoint returns the id of the waypoint closest to the given world
// point, or "" if the network has no waypoints.
func (n *Network) NearestWaypoint(world Vec2) string {
	best := ""
	bestDist := 0.0
	for id, w := range n.waypoints {
		d := world.DistTo(w.Position)
		if best == "" || d < bestDist {
			best = id
			bestDist = d
		}
	}
	return best
}

// successorOf returns the waypoint following id in the route, wrapping to the
// route's first waypoint after the last. An id not on the route (or an empty
// route) falls back to the route's first waypoint.
func successorOf(route []string, id string) string {
	if len(route) == 0 {
		return ""
	}
	for i, wp := range route {
		if wp == id {
			return route[(i+1)%len(route)]
		}
	}
	return route[0]
}
