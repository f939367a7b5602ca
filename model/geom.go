package model

import "math"

// ocsAxisThreshold is the 1/64 tolerance the arbitrary axis algorithm uses
// to decide which world axis to cross with the extrusion vector when
// deriving the OCS X axis.
const ocsAxisThreshold = 1.0 / 64.0

// OCSToWCS projects a point expressed in an entity's Object-Coordinate-System
// into World-Coordinate-System using the arbitrary-axis algorithm standard
// to DWG: derive the OCS X axis (Ax) by crossing a reference world axis with
// the extrusion (normal) vector N, then derive the OCS Y axis (Ay) as
// N × Ax. World Z is used as the reference unless N is close to vertical
// (|Nx|<1/64 and |Ny|<1/64), in which case world Y is used instead to avoid
// a near-zero cross product.
func OCSToWCS(p Point3, extrusion Point3) Point3 {
	n := normalize(extrusion)
	if n == (Point3{}) {
		n = Point3{Z: 1}
	}

	var ref Point3
	if math.Abs(n.X) < ocsAxisThreshold && math.Abs(n.Y) < ocsAxisThreshold {
		ref = Point3{Y: 1}
	} else {
		ref = Point3{Z: 1}
	}

	ax := normalize(cross(ref, n))
	ay := normalize(cross(n, ax))

	return Point3{
		X: p.X*ax.X + p.Y*ay.X + p.Z*n.X,
		Y: p.X*ax.Y + p.Y*ay.Y + p.Z*n.Y,
		Z: p.X*ax.Z + p.Y*ay.Z + p.Z*n.Z,
	}
}

func cross(a, b Point3) Point3 {
	return Point3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v Point3) Point3 {
	len := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if len == 0 {
		return Point3{}
	}
	return Point3{X: v.X / len, Y: v.Y / len, Z: v.Z / len}
}
