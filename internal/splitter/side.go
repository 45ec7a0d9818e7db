package splitter

import (
	"fmt"
	"strings"
)

// Side names one of the two symmetric crop regions of a combined
// recording. The crop geometry is fixed; callers validate input
// dimensions separately.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Sides returns both sides in processing order.
func Sides() []Side {
	return []Side{SideLeft, SideRight}
}

// ParseSide maps a user-supplied name to a side.
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: left, right)", ErrInvalidSide, value)
	}
}

// CropFilter returns the engine crop filter extracting this side.
func (s Side) CropFilter() string {
	if s == SideRight {
		return "crop=1920:1080:1920:0"
	}
	return "crop=1920:1080:0:0"
}

func (s Side) String() string {
	return string(s)
}
