package domain

// Series is one plot series: a group label and the indices of the table
// rows that belong to it.
type Series struct {
	Label   string `json:"label"`
	RowIdxs []int  `json:"row_indexes"`
}

// ChartConfig is the visualization handoff: everything an external
// renderer needs to plot the final table. Axis scaling and limits are
// copied through from the criteria untouched.
type ChartConfig struct {
	Title   string     `json:"title"`
	XLabel  string     `json:"x_label"`
	YLabel  string     `json:"y_label"`
	XAxis   AxisConfig `json:"x_axis"`
	YAxis   AxisConfig `json:"y_axis"`
	GroupBy Grouping   `json:"group_by"`
	Series  []Series   `json:"series"`
}
