// Command libraryctl loads a library from its input file and runs one operation against it.
//
// Every run is a fresh in-memory session: the file is loaded, the operation is applied,
// and the result is printed. Nothing is written back.
package main

import (
	"fmt"
	"os"

	"github.com/AntonStoeckl/library-ledger/library/core"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %s: %v\n", core.CodeOf(err), err)
		os.Exit(1)
	}
}
