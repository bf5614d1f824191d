// Package meshgrid builds the 3D surface point grid from a profile
// Family: phi-sampling, the straight throat extension/slot splice, the
// two-pass raw/morphed projection, and the optional outer wall-shell
// offset (spec.md section 4.5).
package meshgrid
