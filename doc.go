// Command-free root: hornmesh is organized as a set of packages under
// github.com/hornmesh/hornmesh, driven by the horn package's Build
// orchestrator and the cmd/hornmesh CLI. See schema for the parameter
// record, horn for the pipeline, and DESIGN.md for the grounding
// ledger.
package hornmesh
