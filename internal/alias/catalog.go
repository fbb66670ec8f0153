package alias

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed catalog.yaml
var catalogYAML []byte

var defaultTable = sync.OnceValue(func() *Table {
	table, err := Parse(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded alias catalogue is invalid: %v", err))
	}
	return table
})

// Default returns the process-wide table built from the embedded catalogue.
func Default() *Table {
	return defaultTable()
}
