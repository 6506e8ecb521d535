// Package chart draws the small inline SVG charts of the analytics page.
// Output is self-contained markup with no scripts or inline styles.
package chart

import (
	"errors"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/samber/lo"
)

// Default viewport.
const (
	DefaultWidth   = 480
	DefaultHeight  = 200
	DefaultPadding = 28.0
	DefaultTicks   = 4
)

var (
	errEmpty    = errors.New("chart: series required")
	errMismatch = errors.New("chart: labels length must match values")
)

// Options customises a chart.
type Options struct {
	Title  string
	Width  int
	Height int
	Color  string
	Ticks  int
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Ticks <= 0 {
		o.Ticks = DefaultTicks
	}
	if strings.TrimSpace(o.Color) == "" {
		o.Color = "#2563eb"
	}
	return o
}

// frame holds the plot geometry shared by both chart kinds.
type frame struct {
	opts          Options
	left, top     float64
	width, height float64
	max           float64
	b             strings.Builder
}

func newFrame(labels []string, values []float64, opts Options) (*frame, error) {
	if len(values) == 0 {
		return nil, errEmpty
	}
	if len(labels) != len(values) {
		return nil, errMismatch
	}
	opts = opts.normalized()
	f := &frame{
		opts:   opts,
		left:   DefaultPadding + 12,
		top:    DefaultPadding / 2,
		width:  float64(opts.Width) - DefaultPadding - 12,
		height: float64(opts.Height) - DefaultPadding*1.5,
		max:    lo.Max(values),
	}
	if f.max <= 0 {
		f.max = 1
	}
	id := slug(opts.Title)
	fmt.Fprintf(&f.b, `<svg xmlns="http://www.w3.org/2000/svg" class="chart" viewBox="0 0 %d %d" role="img" aria-labelledby="%s">`, opts.Width, opts.Height, id)
	fmt.Fprintf(&f.b, `<title id="%s">%s</title>`, id, template.HTMLEscapeString(opts.Title))
	f.grid()
	return f, nil
}

func (f *frame) bottom() float64 { return f.top + f.height }

func (f *frame) y(v float64) float64 {
	return f.bottom() - v/f.max*f.height
}

func (f *frame) grid() {
	for i := 0; i <= f.opts.Ticks; i++ {
		v := f.max * float64(i) / float64(f.opts.Ticks)
		y := f.y(v)
		fmt.Fprintf(&f.b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="chart__grid" stroke="#cbd5e1" stroke-width="0.5" stroke-dasharray="2,4"/>`, f.left, y, f.left+f.width, y)
		fmt.Fprintf(&f.b, `<text x="%.1f" y="%.1f" font-size="10" text-anchor="end" fill="currentColor">%s</text>`, f.left-6, y+3, tick(v))
	}
}

func (f *frame) label(x float64, text string) {
	fmt.Fprintf(&f.b, `<text x="%.1f" y="%.1f" font-size="10" text-anchor="middle" fill="currentColor">%s</text>`, x, f.bottom()+14, template.HTMLEscapeString(text))
}

func (f *frame) html() template.HTML {
	f.b.WriteString("</svg>")
	return template.HTML(f.b.String())
}

// Bars renders one bar per label.
func Bars(labels []string, values []float64, opts Options) (template.HTML, error) {
	f, err := newFrame(labels, values, opts)
	if err != nil {
		return "", err
	}
	slot := f.width / float64(len(values))
	barWidth := slot * 0.6
	for i, v := range values {
		x := f.left + float64(i)*slot
		y := f.y(math.Max(v, 0))
		fmt.Fprintf(&f.b, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%s: %s</title></rect>`,
			x+(slot-barWidth)/2, y, barWidth, f.bottom()-y, template.HTMLEscapeString(f.opts.Color),
			template.HTMLEscapeString(labels[i]), tick(v))
		f.label(x+slot/2, labels[i])
	}
	return f.html(), nil
}

// Line renders a polyline with a dot per value.
func Line(labels []string, values []float64, opts Options) (template.HTML, error) {
	f, err := newFrame(labels, values, opts)
	if err != nil {
		return "", err
	}
	step := 0.0
	if len(values) > 1 {
		step = f.width / float64(len(values)-1)
	}
	points := make([]string, len(values))
	for i, v := range values {
		x := f.left + float64(i)*step
		if len(values) == 1 {
			x = f.left + f.width/2
		}
		points[i] = fmt.Sprintf("%.1f,%.1f", x, f.y(v))
		f.label(x, labels[i])
	}
	color := template.HTMLEscapeString(f.opts.Color)
	fmt.Fprintf(&f.b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="round"/>`, strings.Join(points, " "), color)
	for _, p := range points {
		xy := strings.SplitN(p, ",", 2)
		fmt.Fprintf(&f.b, `<circle cx="%s" cy="%s" r="3" fill="%s"/>`, xy[0], xy[1], color)
	}
	return f.html(), nil
}

func slug(title string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, strings.ToLower(strings.TrimSpace(title)))
	s = strings.Trim(s, "-")
	if s == "" {
		s = "chart"
	}
	return s + "-title"
}

func tick(v float64) string {
	switch abs := math.Abs(v); {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}
