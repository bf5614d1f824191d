// Command hornmesh builds waveguide mesh geometry from a YAML
// parameter document (spec.md section 6.5).
package main

import (
	"errors"
	"os"

	"github.com/hornmesh/hornmesh/horn"
)

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}

	var be *horn.BuildError
	if errors.As(err, &be) {
		switch be.Kind.Class() {
		case horn.ClassValidation:
			os.Exit(2)
		case horn.ClassDependency:
			os.Exit(3)
		default:
			os.Exit(1)
		}
	}
	os.Exit(1)
}
