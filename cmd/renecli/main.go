// Command renecli is the kernel's command-line surface (spec §6's external
// interfaces), exposing validity checks, relation queries, Boolean
// operations, triangulation, point location and a random multisegment
// generator over JSON.
//
// Structured the same way the teacher's cmd/genlinesegments does: one
// urfave/cli/v3 root Command with IntFlag/Validator-guarded flags, an
// Action closure, and JSON on stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"math/rand/v2"
	"os"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/lycantropos/rene-sub000/rene"
	"github.com/lycantropos/rene-sub000/segment"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:        "renecli",
		Usage:       "Exact-rational planar geometry kernel command line",
		HideVersion: true,
		Commands: []*cli.Command{
			generateCommand(),
			validateCommand(),
			relateCommand(),
			booleanOpCommand(),
			triangulateCommand(),
			locateCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// jsonPoint mirrors rene.Point for JSON I/O: the facade's Point wraps an
// exact rational.Rat pair, which has no natural JSON encoding of its own,
// so the CLI boundary talks in plain integers instead.
type jsonPoint struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

func (p jsonPoint) toRene() rene.Point { return rene.NewPoint(p.X, p.Y) }

type jsonSegment struct {
	Start, End jsonPoint
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "Generates random non-degenerate segments and outputs them as JSON",
		UsageText: "renecli generate --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name: "number", Aliases: []string{"n"}, Value: 3, OnlyOnce: true,
				Validator: func(v int64) error {
					if v <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{Name: "maxx", Value: 10, OnlyOnce: true},
			&cli.IntFlag{Name: "minx", Value: 0, OnlyOnce: true},
			&cli.IntFlag{Name: "maxy", Value: 10, OnlyOnce: true},
			&cli.IntFlag{Name: "miny", Value: 0, OnlyOnce: true},
		},
		Action: generateAction,
	}
}

func generateAction(_ context.Context, cmd *cli.Command) error {
	minx, maxx := cmd.Int("minx"), cmd.Int("maxx")
	miny, maxy := cmd.Int("miny"), cmd.Int("maxy")
	n := cmd.Int("number")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	output := make([]jsonSegment, n)
	for i := int64(0); i < n; i++ {
		for {
			start := jsonPoint{X: randomIntInRange(minx, maxx), Y: randomIntInRange(miny, maxy)}
			end := jsonPoint{X: randomIntInRange(minx, maxx), Y: randomIntInRange(miny, maxy)}
			if start != end {
				output[i] = jsonSegment{Start: start, End: end}
				break
			}
		}
	}
	return printJSON(output)
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate-contour",
		Usage:     "Reads a JSON array of {x,y} vertices from stdin and reports whether they form a valid contour",
		UsageText: "renecli validate-contour < vertices.json",
		Action:    validateAction,
	}
}

func validateAction(_ context.Context, _ *cli.Command) error {
	var raw []jsonPoint
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		return fmt.Errorf("decoding vertices: %w", err)
	}
	vertices := make([]rene.Point, len(raw))
	for i, p := range raw {
		vertices[i] = p.toRene()
	}
	return printJSON(map[string]bool{"valid": rene.IsContourValid(vertices)})
}

func relateCommand() *cli.Command {
	return &cli.Command{
		Name:      "relate-segments",
		Usage:     "Reads a JSON {first, second} pair of segments from stdin and reports their relation",
		UsageText: "renecli relate-segments < segments.json",
		Action:    relateAction,
	}
}

func relateAction(_ context.Context, _ *cli.Command) error {
	var raw struct {
		First, Second jsonSegment
	}
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		return fmt.Errorf("decoding segments: %w", err)
	}
	first := toSegment(raw.First)
	second := toSegment(raw.Second)
	relation := rene.RelateSegments(first, second)
	return printJSON(map[string]string{"relation": relation.String()})
}

func toSegment(s jsonSegment) rene.Segment {
	a := point.New(rational.FromInt(s.Start.X), rational.FromInt(s.Start.Y))
	b := point.New(rational.FromInt(s.End.X), rational.FromInt(s.End.Y))
	seg, err := segment.New(a, b)
	if err != nil {
		log.Fatal(err)
	}
	return seg
}

// jsonPolygon mirrors rene.Polygon for JSON I/O: a border ring plus zero
// or more hole rings, each a plain list of {x,y} vertices.
type jsonPolygon struct {
	Border []jsonPoint   `json:"border"`
	Holes  [][]jsonPoint `json:"holes"`
}

func (p jsonPolygon) toRene() rene.Polygon {
	border := make([]rene.Point, len(p.Border))
	for i, v := range p.Border {
		border[i] = v.toRene()
	}
	holes := make([]rene.Contour, len(p.Holes))
	for i, h := range p.Holes {
		vertices := make([]rene.Point, len(h))
		for j, v := range h {
			vertices[j] = v.toRene()
		}
		holes[i] = shape.NewContour(vertices)
	}
	return shape.NewPolygon(shape.NewContour(border), holes)
}

func fromRenePolygon(p rene.Polygon) jsonPolygon {
	return jsonPolygon{Border: fromReneVertices(p.Border().Vertices()), Holes: fromReneHoles(p.Holes())}
}

// toInt64 floors an exact rational coordinate to the CLI's JSON
// integer boundary: the facade computes fractional coordinates
// internally (e.g. triangulation/overlay intersection points) that this
// JSON shape, matching generate's/validate's plain-integer {x,y}, can't
// carry round-trip exactly, so any non-integer result is floored.
func toInt64(r rational.Rat) int64 {
	v := r.BigRat()
	q := new(big.Int).Div(v.Num(), v.Denom()) // Euclidean division: floor for the positive denominator
	return q.Int64()
}

func fromReneVertices(vertices []rene.Point) []jsonPoint {
	out := make([]jsonPoint, len(vertices))
	for i, v := range vertices {
		out[i] = jsonPoint{X: toInt64(v.X()), Y: toInt64(v.Y())}
	}
	return out
}

func fromReneHoles(holes []rene.Contour) [][]jsonPoint {
	out := make([][]jsonPoint, len(holes))
	for i, h := range holes {
		out[i] = fromReneVertices(h.Vertices())
	}
	return out
}

func booleanOpCommand() *cli.Command {
	return &cli.Command{
		Name:      "boolean-op",
		Usage:     "Reads a JSON {first, second} pair of polygons from stdin, combines them with --op and reports the result multipolygon",
		UsageText: "renecli boolean-op < polygons.json",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: "op", Value: "union", OnlyOnce: true,
				Validator: func(v string) error {
					switch v {
					case "union", "intersection", "difference", "symmetric-difference":
						return nil
					default:
						return fmt.Errorf("op must be one of union, intersection, difference, symmetric-difference")
					}
				},
			},
		},
		Action: booleanOpAction,
	}
}

func booleanOpAction(_ context.Context, cmd *cli.Command) error {
	var raw struct {
		First, Second jsonPolygon
	}
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		return fmt.Errorf("decoding polygons: %w", err)
	}
	first, second := raw.First.toRene(), raw.Second.toRene()

	var result rene.Multipolygon
	switch cmd.String("op") {
	case "union":
		result = rene.Union(first, second)
	case "intersection":
		result = rene.Intersection(first, second)
	case "difference":
		result = rene.Difference(first, second)
	case "symmetric-difference":
		result = rene.SymmetricDifference(first, second)
	}

	members := result.Polygons()
	out := make([]jsonPolygon, len(members))
	for i, p := range members {
		out[i] = fromRenePolygon(p)
	}
	return printJSON(out)
}

func triangulateCommand() *cli.Command {
	return &cli.Command{
		Name:      "triangulate",
		Usage:     "Reads a JSON polygon from stdin and reports its constrained Delaunay triangulation",
		UsageText: "renecli triangulate < polygon.json",
		Action:    triangulateAction,
	}
}

func triangulateAction(_ context.Context, _ *cli.Command) error {
	var raw jsonPolygon
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		return fmt.Errorf("decoding polygon: %w", err)
	}
	tri := rene.Triangulate(raw.toRene())

	triangles := tri.Triangles()
	jsonTriangles := make([][3]jsonPoint, len(triangles))
	for i, face := range triangles {
		for j, v := range face {
			jsonTriangles[i][j] = jsonPoint{X: toInt64(v.X()), Y: toInt64(v.Y())}
		}
	}
	return printJSON(map[string]interface{}{
		"boundary":  fromReneVertices(tri.BoundaryPoints()),
		"triangles": jsonTriangles,
	})
}

func locateCommand() *cli.Command {
	return &cli.Command{
		Name:      "locate",
		Usage:     "Reads a JSON {polygon, point} pair from stdin and reports the point's location against the polygon",
		UsageText: "renecli locate < query.json",
		Action:    locateAction,
	}
}

func locateAction(_ context.Context, _ *cli.Command) error {
	var raw struct {
		Polygon jsonPolygon
		Point   jsonPoint
	}
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		return fmt.Errorf("decoding query: %w", err)
	}
	tr := rene.Trapezoidate(raw.Polygon.toRene())
	location := tr.Locate(raw.Point.toRene())
	return printJSON(map[string]string{"location": location.String()})
}

func printJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
