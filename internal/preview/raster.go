package preview

import (
	"math"

	"github.com/Zachkp/portfolio/internal/cube"
)

// Cell is one character of the cube viewport. Face is -1 for background.
type Cell struct {
	Face  int
	Shade rune
}

type vec3 struct{ x, y, z float64 }

// face corners are listed counter-clockwise seen from outside the cube.
var faceGeometry = [cube.FaceCount]struct {
	normal  vec3
	corners [4]vec3
}{
	cube.FacePosX: {vec3{1, 0, 0}, [4]vec3{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
	cube.FaceNegX: {vec3{-1, 0, 0}, [4]vec3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
	cube.FacePosY: {vec3{0, 1, 0}, [4]vec3{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
	cube.FaceNegY: {vec3{0, -1, 0}, [4]vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	cube.FacePosZ: {vec3{0, 0, 1}, [4]vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
	cube.FaceNegZ: {vec3{0, 0, -1}, [4]vec3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
}

// rotate applies the Y rotation and then the X rotation, matching an XYZ
// Euler rotation of the mesh.
func rotate(v vec3, r cube.Rotation) vec3 {
	sy, cy := math.Sincos(r.Y)
	v = vec3{x: v.x*cy + v.z*sy, y: v.y, z: -v.x*sy + v.z*cy}
	sx, cx := math.Sincos(r.X)
	return vec3{x: v.x, y: v.y*cx - v.z*sx, z: v.y*sx + v.z*cx}
}

// Rasterize projects the cube orthographically onto a w×h character grid.
// Terminal cells are about twice as tall as wide, so the vertical scale is
// halved.
func Rasterize(r cube.Rotation, scale float64, w, h int) [][]Cell {
	grid := make([][]Cell, h)
	for row := range grid {
		grid[row] = make([]Cell, w)
		for col := range grid[row] {
			grid[row][col] = Cell{Face: -1, Shade: ' '}
		}
	}

	// Leave room for the largest cube diagonal at the clicked scale.
	kx := float64(w) / 2 / (math.Sqrt(3) * cube.ScaleClicked * 1.05)
	ky := kx / 2

	type quad struct {
		face  int
		shade rune
		pts   [4][2]float64
	}
	var visible []quad
	for f, g := range faceGeometry {
		n := rotate(g.normal, r)
		if n.z <= 0 {
			continue
		}
		q := quad{face: f, shade: shadeFor(n.z)}
		for i, c := range g.corners {
			p := rotate(vec3{c.x * scale, c.y * scale, c.z * scale}, r)
			q.pts[i] = [2]float64{p.x, p.y}
		}
		visible = append(visible, q)
	}

	for row := 0; row < h; row++ {
		y := (float64(h)/2 - (float64(row) + 0.5)) / ky
		for col := 0; col < w; col++ {
			x := (float64(col) + 0.5 - float64(w)/2) / kx
			for _, q := range visible {
				if insideQuad(x, y, q.pts) {
					grid[row][col] = Cell{Face: q.face, Shade: q.shade}
					break
				}
			}
		}
	}
	return grid
}

func shadeFor(nz float64) rune {
	switch {
	case nz > 0.8:
		return '█'
	case nz > 0.5:
		return '▓'
	case nz > 0.25:
		return '▒'
	default:
		return '░'
	}
}

// insideQuad reports whether (x, y) lies in the convex quad pts, which is
// counter-clockwise for front-facing faces.
func insideQuad(x, y float64, pts [4][2]float64) bool {
	for i := 0; i < 4; i++ {
		a, b := pts[i], pts[(i+1)%4]
		cross := (b[0]-a[0])*(y-a[1]) - (b[1]-a[1])*(x-a[0])
		if cross < 0 {
			return false
		}
	}
	return true
}
