package progress

import (
	"regexp"
	"strconv"
)

var (
	durationPattern = regexp.MustCompile(`Duration:\s*(\d{2}):(\d{2}):(\d{2})\.(\d+)`)
	timePattern     = regexp.MustCompile(`time=\s*(\d{2}):(\d{2}):(\d{2})\.(\d+)`)
	framePattern    = regexp.MustCompile(`frame=\s*(\d+)`)
	fpsPattern      = regexp.MustCompile(`fps=\s*([\d.]+)`)
	speedPattern    = regexp.MustCompile(`speed=\s*([\d.]+)x`)
)

// Parser extracts snapshots from the engine's diagnostic lines.
type Parser struct {
	total   float64
	latched bool
}

// NewParser returns a parser that learns the duration from the stream.
func NewParser() *Parser {
	return &Parser{}
}

// NewParserWithDuration returns a parser pre-latched with a duration
// obtained elsewhere (ffprobe), for engine configurations that never
// print a Duration line.
func NewParserWithDuration(seconds float64) *Parser {
	return &Parser{total: seconds, latched: true}
}

// TotalSeconds reports the latched duration, if known.
func (p *Parser) TotalSeconds() (float64, bool) {
	return p.total, p.latched
}

// Parse consumes one diagnostic line. It returns a snapshot only for
// progress lines, identified by a time= field; duration lines update
// internal state and yield nothing. The first duration seen wins for the
// lifetime of the parser.
func (p *Parser) Parse(line string) (Snapshot, bool) {
	if !p.latched {
		if match := durationPattern.FindStringSubmatch(line); match != nil {
			p.total = clockToSeconds(match[1], match[2], match[3], match[4])
			p.latched = true
		}
	}

	match := timePattern.FindStringSubmatch(line)
	if match == nil {
		return Snapshot{}, false
	}
	current := clockToSeconds(match[1], match[2], match[3], match[4])

	snapshot := Snapshot{
		Seconds:      current,
		TotalSeconds: p.total,
		Frame:        matchInt(framePattern, line),
		FPS:          matchFloat(fpsPattern, line),
		Speed:        matchFloat(speedPattern, line),
	}
	if p.total > 0 {
		snapshot.Percent = current / p.total * 100
		if snapshot.Percent > 100 {
			snapshot.Percent = 100
		}
	}
	return snapshot, true
}

// clockToSeconds converts an HH:MM:SS.ff clock value. The fraction may
// carry two or three digits; only the first two are significant and are
// truncated, not rounded, to hundredths.
func clockToSeconds(hours, minutes, seconds, fraction string) float64 {
	h, _ := strconv.ParseFloat(hours, 64)
	m, _ := strconv.ParseFloat(minutes, 64)
	s, _ := strconv.ParseFloat(seconds, 64)
	if len(fraction) > 2 {
		fraction = fraction[:2]
	}
	centis, _ := strconv.ParseFloat(fraction, 64)
	return h*3600 + m*60 + s + centis/100
}

func matchInt(pattern *regexp.Regexp, line string) int64 {
	match := pattern.FindStringSubmatch(line)
	if match == nil {
		return 0
	}
	value, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0
	}
	return value
}

func matchFloat(pattern *regexp.Regexp, line string) float64 {
	match := pattern.FindStringSubmatch(line)
	if match == nil {
		return 0
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0
	}
	return value
}
