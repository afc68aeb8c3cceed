// Package diagram holds the wire types for a rendered diagram snapshot.
//
// A snapshot is produced by the upstream parser/layout service and replaces
// the previous one wholesale on every reload. Manual placements arrive as
// override fields; everything else is auto-computed upstream.
package diagram

import (
	"encoding/json"
	"io"

	"github.com/RohanAdwankar/oxdraw/lib/geo"
)

type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Node struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Shape string `json:"shape"`

	// AutoPosition is the upstream layout's placement; RenderedPosition is
	// the final upstream placement after balancing. OverridePosition is the
	// persisted manual placement, nil when none exists.
	AutoPosition     *geo.Point `json:"autoPosition"`
	RenderedPosition *geo.Point `json:"renderedPosition"`
	OverridePosition *geo.Point `json:"overridePosition,omitempty"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Style fields pass through the engine untouched.
	FillColor   string `json:"fillColor,omitempty"`
	StrokeColor string `json:"strokeColor,omitempty"`
	TextColor   string `json:"textColor,omitempty"`
}

type Edge struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`

	Label string `json:"label,omitempty"`
	Kind  string `json:"kind"`

	// RenderedPoints is the upstream polyline (at least two points),
	// already routed around obstacles. OverridePoints holds manual interior
	// waypoints only; endpoints always follow the nodes.
	AutoPoints     geo.Points `json:"autoPoints"`
	RenderedPoints geo.Points `json:"renderedPoints"`
	OverridePoints geo.Points `json:"overridePoints,omitempty"`

	Color string `json:"color,omitempty"`
}

type Diagram struct {
	Background string `json:"background,omitempty"`
	AutoSize   Size   `json:"autoSize"`
	RenderSize Size   `json:"renderSize"`

	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`

	Source string `json:"source,omitempty"`
}

func Decode(r io.Reader) (*Diagram, error) {
	var d Diagram
	dec := json.NewDecoder(r)
	if err := dec.Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Diagram) GetNode(id string) *Node {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (d *Diagram) GetEdge(id string) *Edge {
	for _, e := range d.Edges {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (n *Node) HasOverride() bool {
	return n.OverridePosition != nil
}

func (e *Edge) HasOverride() bool {
	return len(e.OverridePoints) > 0
}
