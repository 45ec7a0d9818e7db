package encoder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidQuality reports an unknown quality preset name.
var ErrInvalidQuality = errors.New("invalid quality preset")

// Quality is an abstract encoding-fidelity tier independent of backend.
type Quality string

const (
	QualityLossless Quality = "lossless"
	QualityHigh     Quality = "high"
	QualityMedium   Quality = "medium"
)

// Qualities returns every preset in descending fidelity order.
func Qualities() []Quality {
	return []Quality{QualityLossless, QualityHigh, QualityMedium}
}

// ParseQuality maps a user-supplied name to a preset.
func ParseQuality(value string) (Quality, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "lossless":
		return QualityLossless, nil
	case "high":
		return QualityHigh, nil
	case "medium":
		return QualityMedium, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: lossless, high, medium)", ErrInvalidQuality, value)
	}
}

func (q Quality) String() string {
	return string(q)
}
