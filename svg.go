package spline

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for the SVG methods of [Curve] and
// [BezPath].
type SVGOptions struct {
	// The maximum number of digits after the decimal point. Trailing zeros
	// are dropped. A value of 0 chooses the highest precision necessary to
	// unambiguously represent any given coordinate.
	MaxPrecision int
}

// SVG returns the curve as SVG path data, suitable for the d attribute of a
// path element. It uses the same commands as [Curve.BezPath].
func (c Curve) SVG(opts SVGOptions) string {
	var sb strings.Builder
	// Writing to a strings.Builder doesn't fail.
	_ = c.WriteSVG(&sb, opts)
	return sb.String()
}

// WriteSVG writes the curve as SVG path data to w. It returns the first error
// returned by w.
func (c Curve) WriteSVG(w io.Writer, opts SVGOptions) error {
	sw := svgWriter{w: w, prec: opts.MaxPrecision}
	for el := range c.elements() {
		if !sw.element(el) {
			break
		}
	}
	return sw.err
}

// SVG returns the path as SVG path data.
func (p BezPath) SVG(opts SVGOptions) string {
	var sb strings.Builder
	_ = p.WriteSVG(&sb, opts)
	return sb.String()
}

// WriteSVG writes the path as SVG path data to w. It returns the first error
// returned by w.
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	sw := svgWriter{w: w, prec: opts.MaxPrecision}
	for _, el := range p {
		if !sw.element(el) {
			break
		}
	}
	return sw.err
}

// svgWriter writes path elements as absolute SVG commands, one Write call per
// command.
type svgWriter struct {
	w    io.Writer
	prec int
	buf  []byte
	n    int
	err  error
}

// element writes el and reports whether writing may continue.
func (sw *svgWriter) element(el PathElement) bool {
	switch el.Kind {
	case MoveToKind:
		sw.command('M', el.P0)
	case LineToKind:
		sw.command('L', el.P0)
	case QuadToKind:
		sw.command('Q', el.P0, el.P1)
	case CubicToKind:
		sw.command('C', el.P0, el.P1, el.P2)
	case ClosePathKind:
		sw.command('Z')
	default:
		panic(fmt.Sprintf("spline: invalid path element kind %d", el.Kind))
	}
	return sw.err == nil
}

func (sw *svgWriter) command(cmd byte, pts ...Point) {
	if sw.err != nil {
		return
	}
	b := sw.buf[:0]
	if sw.n > 0 {
		b = append(b, ' ')
	}
	b = append(b, cmd)
	for i, pt := range pts {
		if i > 0 {
			b = append(b, ' ')
		}
		b = sw.appendCoord(b, pt.X)
		b = append(b, ',')
		b = sw.appendCoord(b, pt.Y)
	}
	sw.buf = b
	sw.n++
	_, sw.err = sw.w.Write(b)
}

func (sw *svgWriter) appendCoord(b []byte, v float64) []byte {
	start := len(b)
	if sw.prec <= 0 {
		b = strconv.AppendFloat(b, v, 'f', -1, 64)
	} else {
		b = strconv.AppendFloat(b, v, 'f', sw.prec, 64)
		if bytes.IndexByte(b[start:], '.') >= 0 {
			b = bytes.TrimRight(b, "0")
			b = bytes.TrimSuffix(b, []byte("."))
		}
	}
	// Negative zero, or a small negative value rounded to zero.
	if string(b[start:]) == "-0" {
		b = append(b[:start], '0')
	}
	return b
}
