// Package chart converts aggregated ledger statistics into renderer-agnostic
// drawing instructions. It owns no canvas: the webview draws whatever angles
// and offsets come out of here.
package chart

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/javohir/hamyon/internal/domain"
)

const (
	// donutStartAngle puts the first segment at 12 o'clock.
	donutStartAngle = -math.Pi / 2

	// segmentGap is the angular seam between adjacent segments, in radians,
	// split evenly between a segment's start and end.
	segmentGap = 0.02
)

// Segment is one circular donut slice. Angles are radians, clockwise.
type Segment struct {
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Color      string  `json:"color"`
}

// LegendEntry is one legend row with an independently rounded share.
type LegendEntry struct {
	Icon    string `json:"icon"`
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

// DonutLayout is the full set of donut drawing instructions.
// Empty is the sentinel for "nothing to draw, show the placeholder".
type DonutLayout struct {
	Empty       bool            `json:"empty"`
	Total       decimal.Decimal `json:"total"`
	CenterLabel string          `json:"center_label"`
	Segments    []Segment       `json:"segments,omitempty"`
	Legend      []LegendEntry   `json:"legend,omitempty"`
}

// Donut lays out one segment per category stat, placed consecutively
// clockwise from 12 o'clock, each spanning its share of the full circle.
// A segment narrower than the seam gap is emitted with zero width so the
// segment and legend lists stay index-aligned with the input.
func Donut(stats []domain.CategoryStat) DonutLayout {
	total := decimal.Zero
	for _, s := range stats {
		total = total.Add(s.Total)
	}

	if len(stats) == 0 || total.IsZero() {
		return DonutLayout{Empty: true, Total: decimal.Zero}
	}

	totalF, _ := total.Float64()

	layout := DonutLayout{
		Total:       total,
		CenterLabel: FormatShort(total),
		Segments:    make([]Segment, 0, len(stats)),
		Legend:      make([]LegendEntry, 0, len(stats)),
	}

	start := donutStartAngle
	for _, s := range stats {
		v, _ := s.Total.Float64()
		span := v / totalF * 2 * math.Pi

		seg := Segment{Color: s.Color}
		if span > segmentGap {
			seg.StartAngle = start + segmentGap/2
			seg.EndAngle = start + span - segmentGap/2
		} else {
			seg.StartAngle = start
			seg.EndAngle = start
		}

		layout.Segments = append(layout.Segments, seg)
		layout.Legend = append(layout.Legend, LegendEntry{
			Icon:    s.Icon,
			Name:    s.Name,
			Percent: int(math.Round(v / totalF * 100)),
		})

		start += span
	}

	return layout
}
