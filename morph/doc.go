// Package morph implements the radial morph engine (spec.md section
// 4.4): after the raw profile evaluation, each (t, phi) sample's
// radius is optionally blended toward a rectangle or circle target as
// t approaches 1.
package morph
