/*
File    : jack-go/symbols/dump.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package symbols

import (
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// DumpClassScope renders the class-scope entries (statics and fields) as an
// ASCII table. Rows are ordered by kind, then by index, so the output is
// stable regardless of map iteration order.
//
// Parameters:
//   - w: Destination for the rendered table (typically os.Stdout)
func (t *Table) DumpClassScope(w io.Writer) {
	renderScope(w, t.classScope)
}

// DumpSubroutineScope renders the subroutine-scope entries (arguments and
// locals) as an ASCII table. The engine calls this under --verbose after a
// subroutine's declarations have been parsed.
//
// Parameters:
//   - w: Destination for the rendered table (typically os.Stdout)
func (t *Table) DumpSubroutineScope(w io.Writer) {
	renderScope(w, t.subroutineScope)
}

// renderScope writes one scope's entries with tablewriter.
func renderScope(w io.Writer, scope map[string]Symbol) {
	entries := make([]Symbol, 0, len(scope))
	for _, symbol := range scope {
		entries = append(entries, symbol)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Kind != entries[j].Kind {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Index < entries[j].Index
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Type", "Kind", "Index"})
	for _, entry := range entries {
		table.Append([]string{entry.Name, entry.Type, string(entry.Kind), strconv.Itoa(entry.Index)})
	}
	table.Render()
}
