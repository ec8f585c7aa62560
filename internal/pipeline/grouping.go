package pipeline

import (
	"foamcli/internal/units"
	"foamcli/pkg/contracts/domain"
)

// studyLabelPrefixLen is the truncation length for study grouping:
// reference labels from the same study share a prefix, so cutting to it
// collapses repeated entries into one series.
const studyLabelPrefixLen = 6

// buildChart assembles the visualization handoff: axis labels with
// display units, pass-through scaling configuration, and row indices
// grouped by the chosen column. Series keep first-appearance order.
func buildChart(recs []domain.DenormalizedRecord, c domain.Criteria, variable1, unit1, variable2, unit2 string) domain.ChartConfig {
	groupBy := c.GroupBy
	if groupBy == "" {
		groupBy = domain.GroupByMaterial
	}

	byLabel := make(map[string]int)
	var series []domain.Series
	for i, rec := range recs {
		label := groupLabel(rec, groupBy)
		pos, ok := byLabel[label]
		if !ok {
			pos = len(series)
			byLabel[label] = pos
			series = append(series, domain.Series{Label: label})
		}
		series[pos].RowIdxs = append(series[pos].RowIdxs, i)
	}

	return domain.ChartConfig{
		Title:   variable1 + " vs " + variable2,
		XLabel:  variable1 + " [" + units.Display(unit1) + "]",
		YLabel:  variable2 + " [" + units.Display(unit2) + "]",
		XAxis:   c.XAxis,
		YAxis:   c.YAxis,
		GroupBy: groupBy,
		Series:  series,
	}
}

func groupLabel(rec domain.DenormalizedRecord, groupBy domain.Grouping) string {
	if groupBy == domain.GroupByStudy {
		label := rec.ReferenceLabel
		if len(label) > studyLabelPrefixLen {
			label = label[:studyLabelPrefixLen]
		}
		return label
	}
	return rec.BaseMaterial
}
