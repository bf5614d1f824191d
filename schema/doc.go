// Package schema defines the flat horn-mesh parameter record
// (spec.md section 3.1) and its validator. Records are decoded from
// YAML (gopkg.in/yaml.v3) with strict unknown-key rejection, then
// staged through Validate before any other package will accept them,
// mirroring lvlath/builder's construct-then-validate staging
// (builder.newBuilderConfig followed by per-constructor validation).
package schema
