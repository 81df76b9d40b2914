package main

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

func fmtTemp(temp int64) string {
	whole := temp / 10
	frac := temp % 10
	sign := ""
	if frac < 0 {
		frac = -frac
		if whole == 0 {
			sign = "-"
		}
	}
	return fmt.Sprintf("%s%d.%d", sign, whole, frac)
}

// meanTemp is sum/count in tenths, rounded half away from zero. A negative
// mean that rounds to zero stays -0.
func meanTemp(sum, count int64) float64 {
	return math.Round(float64(sum) / float64(count))
}

func fmtMean(sum, count int64) string {
	return strconv.FormatFloat(meanTemp(sum, count)/10, 'f', 1, 64)
}

func (r *results) summarize() string {
	vals := make([]*stationSummary, 0, r.len())
	r.stations.Iter(func(_ string, s *stationSummary) bool {
		vals = append(vals, s)
		return false
	})
	slices.SortFunc(vals, func(a, b *stationSummary) int { return strings.Compare(a.name, b.name) })

	summaries := make([]string, 0, len(vals))
	for _, v := range vals {
		summaries = append(summaries, fmt.Sprintf("%s=%s", v.name, v.summarize()))
	}

	return fmt.Sprintf("{%s}\n", strings.Join(summaries, ", "))
}

func (s *stationSummary) summarize() string {
	return fmt.Sprintf("%s/%s/%s", fmtTemp(int64(s.min)), fmtMean(s.sum, s.count), fmtTemp(int64(s.max)))
}

// toLines puts each entry of a summary on its own line.
func toLines(summary string) string {
	s := strings.TrimSpace(summary)
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	return strings.ReplaceAll(s, ", ", "\n")
}
