package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/Vodeneev/sofacheck/internal/pkg/jsonvalue"
)

// StructureOptions bounds the outline printed by PrintStructure.
type StructureOptions struct {
	MaxDepth int
	MaxKeys  int
}

// PrintStructure prints an outline of v: keys with their types, recursing
// into objects and into the first element of arrays until MaxDepth.
func PrintStructure(w io.Writer, v *jsonvalue.Value, opts StructureOptions) {
	printStructure(w, v, opts, 0, 0)
}

func printStructure(w io.Writer, v *jsonvalue.Value, opts StructureOptions, indent, depth int) {
	if depth >= opts.MaxDepth {
		return
	}
	prefix := strings.Repeat("  ", indent)

	switch v.Kind() {
	case jsonvalue.KindObject:
		for i, m := range v.Members() {
			if i >= opts.MaxKeys {
				break
			}
			switch m.Value.Kind() {
			case jsonvalue.KindObject:
				fmt.Fprintf(w, "%s%s: {...} (%d keys)\n", prefix, m.Key, m.Value.Len())
				printStructure(w, m.Value, opts, indent+1, depth+1)
			case jsonvalue.KindArray:
				fmt.Fprintf(w, "%s%s: [...] (%d items)\n", prefix, m.Key, m.Value.Len())
				if m.Value.Len() > 0 && depth < opts.MaxDepth-1 {
					fmt.Fprintf(w, "%s  First item:\n", prefix)
					printStructure(w, m.Value.Index(0), opts, indent+2, depth+1)
				}
			default:
				fmt.Fprintf(w, "%s%s: %s\n", prefix, m.Key, m.Value.TypeName())
			}
		}
	case jsonvalue.KindArray:
		if v.Len() > 0 {
			fmt.Fprintf(w, "%sList with %d items, first item:\n", prefix, v.Len())
			printStructure(w, v.Index(0), opts, indent, depth+1)
		}
	}
}
