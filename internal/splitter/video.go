package splitter

import (
	"context"
	"fmt"
	"os"

	"sidesplit/internal/ffmpeg"
	"sidesplit/internal/media/ffprobe"
)

// Expected dimensions of a dual-camera side-by-side recording.
const (
	ExpectedWidth  = 3840
	ExpectedHeight = 1080
)

// Video describes a probed input file.
type Video struct {
	Path      string
	Width     int
	Height    int
	Codec     string
	SizeBytes int64
}

// ValidDimensions reports whether the input matches the expected 32:9 frame.
func (v Video) ValidDimensions() bool {
	return v.Width == ExpectedWidth && v.Height == ExpectedHeight
}

// AspectRatio returns the reduced aspect ratio, e.g. "32:9".
func (v Video) AspectRatio() string {
	if v.Width <= 0 || v.Height <= 0 {
		return "unknown"
	}
	d := gcd(v.Width, v.Height)
	return fmt.Sprintf("%d:%d", v.Width/d, v.Height/d)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Analyze probes the input's streams and selects the first video stream
// carrying dimensions. Absence of such a stream is a hard failure for
// the file.
func Analyze(ctx context.Context, exec ffmpeg.Executor, ffprobeBinary, path string) (Video, error) {
	result, err := ffprobe.Inspect(ctx, exec, ffprobeBinary, path)
	if err != nil {
		return Video{}, fmt.Errorf("%w: %v", ErrProbeFailed, err)
	}
	stream, ok := result.VideoStream()
	if !ok {
		return Video{}, fmt.Errorf("%w: %s", ErrNoVideoStream, path)
	}

	size := result.SizeBytes()
	if size == 0 {
		if info, statErr := os.Stat(path); statErr == nil {
			size = info.Size()
		}
	}

	return Video{
		Path:      path,
		Width:     stream.Width,
		Height:    stream.Height,
		Codec:     stream.CodecName,
		SizeBytes: size,
	}, nil
}
