package fixture_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/paramgrid/builder"
	"github.com/katalvlaran/paramgrid/fixture"
)

// ExampleLoad turns a YAML parameter table into combinations and writes them
// back as YAML fixtures.
func ExampleLoad() {
	src := `
browser: [firefox, chrome]
locale: [en]
dark_mode: []
`
	ps, err := fixture.Load(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = fixture.Dump(os.Stdout, builder.New(ps...).Build().All()); err != nil {
		fmt.Println("error:", err)
	}

	// Output:
	// - browser: firefox
	//   locale: en
	// - browser: chrome
	//   locale: en
}
