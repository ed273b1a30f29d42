package figures

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// FrameTimes returns the clock values of an animation lasting span sampled
// at fps frames per second. The first frame is at 0 and the last exactly
// at span.
func FrameTimes(span time.Duration, fps int) ([]time.Duration, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	step := time.Second / time.Duration(fps)
	if step <= 0 {
		return nil, fmt.Errorf("fps %d is finer than the clock resolution", fps)
	}
	times := make([]time.Duration, 0, int(span/step)+2)
	for t := time.Duration(0); t < span; t += step {
		times = append(times, t)
	}
	return append(times, span), nil
}

// WriteFrames advances d through its transitions at fps and writes each
// frame into dir as frame_NNN.svg. It returns the paths written.
func (d *Document) WriteFrames(dir string, fps int) ([]string, error) {
	times, err := FrameTimes(d.Span(), fps)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("write frames: %w", err)
	}
	paths := make([]string, 0, len(times))
	for n, t := range times {
		d.Advance(t)
		name := filepath.Join(dir, fmt.Sprintf("frame_%03d.svg", n))
		if err := writeFile(name, d.EncodeFrame); err != nil {
			return paths, fmt.Errorf("write frame %d: %w", n, err)
		}
		paths = append(paths, name)
	}
	return paths, nil
}

func writeFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
