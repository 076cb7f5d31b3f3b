// Package geargl is a small software 3D pipeline for flat-shaded polygon scenes.
//
// It builds closed gear solids as lists of planar faces, places them with rigid
// transforms, projects them through a perspective frustum, culls back faces, sorts
// the survivors back to front and computes one color per face. The output is a list
// of device-space polygon outlines that a caller-provided Target fills or strokes.
//
// Pipeline (fixed, recomputed every frame):
//
//	Gear faces → Model → Camera → Cull → Sort → Shade → Device → Target.
//
// There is no depth buffer. Occlusion relies on the painter's order plus the
// convexity of each gear. Nothing in the package keeps state between frames.
//
// Numeric preconditions (non-degenerate vectors before Normalize, sane frustum
// planes, at least three teeth) are the caller's job. Violations produce NaN or
// infinite coordinates rather than errors; Project drops such faces.
package geargl
