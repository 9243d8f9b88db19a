package ports

// Profile is the resolved 2D profile surface exposed by the geometry
// collaborator. The planner consumes it only to derive the tool diameter
// bounds and the parameter tree of contour and pocket operations; profile
// construction itself happens outside this module.
type Profile interface {
	// MinInternalRadius returns the tightest inside corner radius, or zero
	// when the profile has none.
	MinInternalRadius() float64

	// MinExternalRadius returns the tightest outside corner radius.
	MinExternalRadius() float64

	// Area returns the enclosed area.
	Area() float64

	// Perimeter returns the outline length.
	Perimeter() float64
}
