package rendertty

import (
	"io"

	"github.com/delaneyj/fetchparty/render"
	"github.com/olekukonko/tablewriter"
)

// Table renders rows under header as an ASCII table.
func Table(header []string, rows ...[]string) render.Renderable {
	return render.Func(func(w io.Writer) error {
		tbl := tablewriter.NewWriter(w)
		tbl.SetHeader(header)
		for _, row := range rows {
			tbl.Append(row)
		}
		tbl.Render()
		return nil
	})
}
