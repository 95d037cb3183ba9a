package report

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sartorproj/goineq/inequality"
	"gopkg.in/yaml.v3"
)

const fontSize = 12

// document is the serialized form of a finished chart.
type document struct {
	Title   string                `json:"title,omitempty" yaml:"title,omitempty"`
	XLabel  string                `json:"xlabel" yaml:"xlabel"`
	YLabel  string                `json:"ylabel" yaml:"ylabel"`
	LFooter string                `json:"lfooter,omitempty" yaml:"lfooter,omitempty"`
	RFooter string                `json:"rfooter,omitempty" yaml:"rfooter,omitempty"`
	Name    string                `json:"name" yaml:"name"`
	Gini    inequality.Comparison `json:"gini" yaml:"gini"`
	Points  []inequality.Point    `json:"points" yaml:"points"`
}

func newDocument(chart *Chart, opts Options) document {
	return document{
		Title:   opts.Title,
		XLabel:  opts.XLabel,
		YLabel:  opts.YLabel,
		LFooter: opts.LFooter,
		RFooter: opts.RFooter,
		Name:    chart.Name,
		Gini:    chart.Gini,
		Points:  chart.Points,
	}
}

func writeJSON(w io.Writer, chart *Chart, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(chart, opts))
}

func writeYAML(w io.Writer, chart *Chart, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(chart, opts)); err != nil {
		return err
	}
	return enc.Close()
}

func writeCSV(w io.Writer, chart *Chart) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"share_population", "lorenz", "equality"}); err != nil {
		return err
	}
	for _, p := range chart.Points {
		x := strconv.FormatFloat(p.X, 'f', -1, 64)
		record := []string{x, strconv.FormatFloat(p.Y, 'f', -1, 64), x}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// writeSVG draws the Lorenz curve against the line of equality.
func writeSVG(w io.Writer, chart *Chart, opts Options) error {
	width := opts.Width * DefaultDPI
	height := opts.Height * DefaultDPI
	pad := opts.Pad * fontSize

	// Plot area, leaving room for the title, axis labels and footers.
	left := pad + 3*fontSize
	right := width - pad
	top := pad + 2*fontSize
	bottom := height - pad - 3*fontSize
	plotW, plotH := right-left, bottom-top

	x0, x1 := opts.XLim[0], opts.XLim[1]
	y0, y1 := opts.YLim[0], opts.YLim[1]
	px := func(x float64) float64 { return left + (x-x0)/(x1-x0)*plotW }
	py := func(y float64) float64 { return bottom - (y-y0)/(y1-y0)*plotH }

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" font-family="sans-serif">`+"\n",
		width, height, width, height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="white"/>`+"\n")

	if opts.Title != "" {
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="%d">%s</text>`+"\n",
			width/2, pad+fontSize, fontSize+2, escape(opts.Title))
	}

	// Axes.
	fmt.Fprintf(bw, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#333333"/>`+"\n",
		left, top, plotW, plotH)
	fmt.Fprintf(bw, `<clipPath id="plot"><rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/></clipPath>`+"\n",
		left, top, plotW, plotH)
	for _, t := range ticks(x0, x1) {
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="%d">%s</text>`+"\n",
			px(t), bottom+fontSize+2, fontSize-2, tickLabel(t))
	}
	for _, t := range ticks(y0, y1) {
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="end" font-size="%d">%s</text>`+"\n",
			left-4, py(t)+4, fontSize-2, tickLabel(t))
	}
	fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="middle" font-size="%d">%s</text>`+"\n",
		left+plotW/2, bottom+2*fontSize+4, fontSize, escape(opts.XLabel))
	fmt.Fprintf(bw, `<text transform="translate(%.1f %.1f) rotate(-90)" text-anchor="middle" font-size="%d">%s</text>`+"\n",
		pad+fontSize/2, top+plotH/2, fontSize, escape(opts.YLabel))

	// Line of equality, then the Lorenz curve.
	fmt.Fprintf(bw, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#999999" stroke-dasharray="4 3" clip-path="url(#plot)"/>`+"\n",
		px(0), py(0), px(1), py(1))

	var path strings.Builder
	for i, p := range chart.Points {
		if i > 0 {
			path.WriteByte(' ')
		}
		fmt.Fprintf(&path, "%.2f,%.2f", px(p.X), py(p.Y))
	}
	fmt.Fprintf(bw, `<polyline points="%s" fill="none" stroke="#1f77b4" stroke-width="2" clip-path="url(#plot)"/>`+"\n", path.String())

	fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" font-size="%d">Gini = %.4f</text>`+"\n",
		left+8, top+fontSize+4, fontSize, chart.Gini.RankWeighted)

	footerY := height - 0.005*height - 2
	if opts.LFooter != "" {
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" font-size="9" font-style="italic" fill="#999999">%s</text>`+"\n",
			0.01*width, footerY, escape(opts.LFooter))
	}
	if opts.RFooter != "" {
		fmt.Fprintf(bw, `<text x="%.1f" y="%.1f" text-anchor="end" font-size="9" font-style="italic" fill="#999999">%s</text>`+"\n",
			0.99*width, footerY, escape(opts.RFooter))
	}

	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

// ticks returns five evenly spaced positions from lo to hi.
func ticks(lo, hi float64) []float64 {
	out := make([]float64, 5)
	for i := range out {
		out[i] = lo + float64(i)*(hi-lo)/4
	}
	return out
}

func tickLabel(t float64) string {
	return strconv.FormatFloat(t, 'g', 4, 64)
}

func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}
