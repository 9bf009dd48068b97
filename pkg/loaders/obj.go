// Package loaders imports external mesh formats into the shape graph.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/whitted-go/raytracer/pkg/core"
	"github.com/whitted-go/raytracer/pkg/geometry"
)

// OBJ is the result of parsing a Wavefront OBJ stream: the raw vertex data
// plus the triangulated faces, bucketed by their "g" group names.
type OBJ struct {
	// Vertices and Normals are 1-based, as OBJ face records index them
	Vertices []core.Tuple
	Normals  []core.Tuple

	DefaultGroup *geometry.Group
	Groups       map[string]*geometry.Group
	// IgnoredLines counts the records the parser did not understand
	IgnoredLines int

	groupOrder []string
	current    *geometry.Group
}

// ParseOBJFile parses the OBJ file at the given path
func ParseOBJFile(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening obj file: %w", err)
	}
	defer f.Close()
	o, err := ParseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return o, nil
}

// ParseOBJ parses an OBJ stream. Unrecognized records are counted and
// skipped; malformed vertex or face records fail with their line number.
func ParseOBJ(r io.Reader) (*OBJ, error) {
	o := &OBJ{
		DefaultGroup: geometry.NewGroup(),
		Groups:       map[string]*geometry.Group{},
	}
	o.current = o.DefaultGroup

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "v":
			err = o.parseVertex(fields[1:])
		case "vn":
			err = o.parseNormal(fields[1:])
		case "f":
			err = o.parseFace(fields[1:])
		case "g":
			o.switchGroup(strings.Join(fields[1:], " "))
		default:
			o.IgnoredLines++
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obj stream: %w", err)
	}
	return o, nil
}

// Group collects every parsed face into a single group, with each named
// group kept as its own subgroup.
func (o *OBJ) Group() *geometry.Group {
	g := geometry.NewGroup()
	if len(o.DefaultGroup.Children()) > 0 {
		g.AddChild(o.DefaultGroup)
	}
	for _, name := range o.groupOrder {
		g.AddChild(o.Groups[name])
	}
	return g
}

func (o *OBJ) switchGroup(name string) {
	if g, ok := o.Groups[name]; ok {
		o.current = g
		return
	}
	g := geometry.NewGroup()
	o.Groups[name] = g
	o.groupOrder = append(o.groupOrder, name)
	o.current = g
}

func (o *OBJ) parseVertex(args []string) error {
	p, err := parseTriple(args)
	if err != nil {
		return fmt.Errorf("vertex: %w", err)
	}
	o.Vertices = append(o.Vertices, core.NewPoint(p[0], p[1], p[2]))
	return nil
}

func (o *OBJ) parseNormal(args []string) error {
	n, err := parseTriple(args)
	if err != nil {
		return fmt.Errorf("vertex normal: %w", err)
	}
	o.Normals = append(o.Normals, core.NewVector(n[0], n[1], n[2]))
	return nil
}

func parseTriple(args []string) ([3]float64, error) {
	var out [3]float64
	if len(args) < 3 {
		return out, fmt.Errorf("want 3 components, got %d", len(args))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return out, fmt.Errorf("component %q: %w", args[i], err)
		}
		out[i] = v
	}
	return out, nil
}

// parseFace triangulates a polygon record as a fan anchored on its first
// vertex. Faces carrying vertex normals become smooth triangles.
func (o *OBJ) parseFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face: want at least 3 vertices, got %d", len(args))
	}
	verts := make([]core.Tuple, len(args))
	normals := make([]core.Tuple, len(args))
	smooth := true
	for i, arg := range args {
		v, n, hasNormal, err := o.resolveRef(arg)
		if err != nil {
			return fmt.Errorf("face: %w", err)
		}
		verts[i] = v
		normals[i] = n
		smooth = smooth && hasNormal
	}

	for i := 1; i < len(verts)-1; i++ {
		if smooth {
			o.current.AddChild(geometry.NewSmoothTriangle(
				verts[0], verts[i], verts[i+1],
				normals[0], normals[i], normals[i+1],
			))
		} else {
			o.current.AddChild(geometry.NewTriangle(verts[0], verts[i], verts[i+1]))
		}
	}
	return nil
}

// resolveRef parses a face vertex reference: "v", "v/vt", "v//vn" or
// "v/vt/vn". Texture indices are accepted and discarded.
func (o *OBJ) resolveRef(ref string) (vertex, normal core.Tuple, hasNormal bool, err error) {
	parts := strings.Split(ref, "/")

	vi, err := strconv.Atoi(parts[0])
	if err != nil {
		return vertex, normal, false, fmt.Errorf("vertex reference %q: %w", ref, err)
	}
	if vi < 1 || vi > len(o.Vertices) {
		return vertex, normal, false, fmt.Errorf("vertex %d out of range (have %d)", vi, len(o.Vertices))
	}
	vertex = o.Vertices[vi-1]

	if len(parts) < 3 || parts[2] == "" {
		return vertex, normal, false, nil
	}
	ni, err := strconv.Atoi(parts[2])
	if err != nil {
		return vertex, normal, false, fmt.Errorf("normal reference %q: %w", ref, err)
	}
	if ni < 1 || ni > len(o.Normals) {
		return vertex, normal, false, fmt.Errorf("normal %d out of range (have %d)", ni, len(o.Normals))
	}
	return vertex, o.Normals[ni-1], true, nil
}
