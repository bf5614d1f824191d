// Package postproc runs the strictly-ordered mesh post-processing
// passes of spec.md section 4.8: weld, edge-use census, orientation
// propagation, global orientation fix, optional tag-group flips,
// watertightness/stitching, connectedness, and tag assignment.
package postproc
