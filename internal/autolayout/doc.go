// Package autolayout implements container-driven child placement.
//
// The algorithm is a simplified flexbox: a container declares a layout
// direction, padding, spacing, and alignment, and each child contributes an
// intrinsic size plus optional flex factors. Calculate maps that configuration
// to absolute child geometry without consulting the constraint solver.
package autolayout
