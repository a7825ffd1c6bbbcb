package outline

import (
	"encoding/xml"
	gomath "math"
	"strconv"
	"strings"

	"github.com/lunarc/nebula/pkg/math"
)

// circleSegments is the number of boundary samples emitted for circle
// and ellipse elements.
const circleSegments = 48

// ParseSVG extracts an outline from raw SVG source. It understands
// polygon, polyline, rect, circle and ellipse elements plus the linear
// subset of path data (M, L, H, V, Z commands, absolute or relative).
// When the document has several candidate elements the one with the
// most boundary samples wins. Returns nil when the source holds no
// usable geometry; callers must treat nil as an empty outline.
func ParseSVG(src []byte) *Outline {
	dec := xml.NewDecoder(strings.NewReader(string(src)))
	var best []math.Vec2
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		var pts []math.Vec2
		switch el.Name.Local {
		case "polygon", "polyline":
			pts = parsePointList(attr(el, "points"))
		case "rect":
			pts = rectPoints(el)
		case "circle", "ellipse":
			pts = ellipsePoints(el)
		case "path":
			pts = parsePathData(attr(el, "d"))
		}
		if len(pts) > len(best) {
			best = pts
		}
	}
	if len(best) < 3 {
		return nil
	}
	return &Outline{Points: normalize(best)}
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func attrFloat(el xml.StartElement, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(attr(el, name)), 64)
	if err != nil {
		return 0
	}
	return v
}

// parsePointList reads the "points" attribute of polygon/polyline:
// whitespace- or comma-separated coordinate pairs.
func parsePointList(s string) []math.Vec2 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) < 2 {
		return nil
	}
	pts := make([]math.Vec2, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			return nil
		}
		pts = append(pts, math.Vec2{X: x, Y: y})
	}
	return pts
}

func rectPoints(el xml.StartElement) []math.Vec2 {
	x := attrFloat(el, "x")
	y := attrFloat(el, "y")
	w := attrFloat(el, "width")
	h := attrFloat(el, "height")
	if w <= 0 || h <= 0 {
		return nil
	}
	return []math.Vec2{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

func ellipsePoints(el xml.StartElement) []math.Vec2 {
	cx := attrFloat(el, "cx")
	cy := attrFloat(el, "cy")
	rx := attrFloat(el, "r")
	ry := rx
	if rx == 0 {
		rx = attrFloat(el, "rx")
		ry = attrFloat(el, "ry")
	}
	if rx <= 0 || ry <= 0 {
		return nil
	}
	pts := make([]math.Vec2, circleSegments)
	for i := range pts {
		a := float64(i) / circleSegments * 2 * gomath.Pi
		pts[i] = math.Vec2{X: cx + rx*gomath.Cos(a), Y: cy + ry*gomath.Sin(a)}
	}
	return pts
}

// parsePathData walks the linear commands of a path "d" attribute.
// Curves (C, Q, A and friends) are skipped along with their arguments;
// a path made only of curves yields too few samples and is discarded
// by the caller.
func parsePathData(d string) []math.Vec2 {
	toks := tokenizePath(d)
	var pts []math.Vec2
	var cur math.Vec2
	i := 0
	readPair := func(rel bool) (math.Vec2, bool) {
		if i+1 >= len(toks) {
			return math.Vec2{}, false
		}
		x, errX := strconv.ParseFloat(toks[i], 64)
		y, errY := strconv.ParseFloat(toks[i+1], 64)
		i += 2
		if errX != nil || errY != nil {
			return math.Vec2{}, false
		}
		if rel {
			return math.Vec2{X: cur.X + x, Y: cur.Y + y}, true
		}
		return math.Vec2{X: x, Y: y}, true
	}
	cmd := ""
	for i < len(toks) {
		t := toks[i]
		if len(t) == 1 && strings.ContainsAny(t, "MmLlHhVvZzCcSsQqTtAa") {
			cmd = t
			i++
			if cmd == "Z" || cmd == "z" {
				break
			}
			continue
		}
		switch cmd {
		case "M", "L", "m", "l":
			p, ok := readPair(cmd == "m" || cmd == "l")
			if !ok {
				return pts
			}
			cur = p
			pts = append(pts, cur)
		case "H", "h":
			v, err := strconv.ParseFloat(t, 64)
			i++
			if err != nil {
				return pts
			}
			if cmd == "h" {
				v += cur.X
			}
			cur = math.Vec2{X: v, Y: cur.Y}
			pts = append(pts, cur)
		case "V", "v":
			v, err := strconv.ParseFloat(t, 64)
			i++
			if err != nil {
				return pts
			}
			if cmd == "v" {
				v += cur.Y
			}
			cur = math.Vec2{X: cur.X, Y: v}
			pts = append(pts, cur)
		default:
			// Curve argument or junk; skip the token.
			i++
		}
	}
	return pts
}

// tokenizePath splits path data into command letters and numbers.
func tokenizePath(d string) []string {
	var toks []string
	var num strings.Builder
	flush := func() {
		if num.Len() > 0 {
			toks = append(toks, num.String())
			num.Reset()
		}
	}
	for _, r := range d {
		switch {
		case (r == 'e' || r == 'E') && num.Len() > 0:
			// Exponent inside a number, not a command letter.
			num.WriteRune(r)
		case r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == ',' || r == '\t' || r == '\n' || r == '\r':
			flush()
		case r == '-':
			// A minus sign starts a new number unless it follows an exponent.
			s := num.String()
			if num.Len() > 0 && !strings.HasSuffix(s, "e") && !strings.HasSuffix(s, "E") {
				flush()
			}
			num.WriteRune(r)
		default:
			num.WriteRune(r)
		}
	}
	flush()
	return toks
}
