package pipeline_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/rnaviz/pkg/pipeline"
)

func ExampleRNA2SVG() {
	svg, err := pipeline.RNA2SVG(">hairpin\nGGGAAACCC\n(((...)))", "white", 0, 1, false, false)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(strings.Count(svg, "<circle"))
	// Output: 9
}

func ExampleRNA2SVG_unbalanced() {
	_, err := pipeline.RNA2SVG("(()", "white", 0, 1, false, false)
	fmt.Println(err)
	// Output: STRUCTURE_ERROR: unclosed '(' at position 0
}
