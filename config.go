package figures

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// SceneConfig describes one drawing: the canvas size, both figures and
// whether origins are marked.
//
//	width = 500
//	height = 500
//	origins = true
//
//	[first]
//	kind = "lion"
//	x = 100
//	y = 100
//	mode = "winking"
//
//	[second]
//	kind = "dog"
//	x = 300
//	y = 300
type SceneConfig struct {
	Width      float64   `toml:"width"`
	Height     float64   `toml:"height"`
	ShowOrigin bool      `toml:"origins"`
	First      Selection `toml:"first"`
	Second     Selection `toml:"second"`
}

// DefaultSceneConfig returns a lion and a dog on a 500x500 canvas.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Width:  500,
		Height: 500,
		First:  Selection{Kind: KindLion, X: 100, Y: 100},
		Second: Selection{Kind: KindDog, X: 300, Y: 300},
	}
}

// DecodeSceneConfig reads TOML from r over the defaults. Unknown keys
// are an error.
func DecodeSceneConfig(r io.Reader) (SceneConfig, error) {
	cfg := DefaultSceneConfig()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode scene config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("scene config: canvas size %vx%v must be positive", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// LoadSceneConfig reads a TOML scene file.
func LoadSceneConfig(path string) (SceneConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultSceneConfig(), fmt.Errorf("load scene config: %w", err)
	}
	defer f.Close()
	return DecodeSceneConfig(f)
}

// Render builds the document for cfg: a fresh canvas, cleared, then
// composed.
func (cfg SceneConfig) Render() (*Document, *Scene) {
	d := NewDocument(cfg.Width, cfg.Height)
	d.Clear()
	return d, Compose(d, cfg.First, cfg.Second, cfg.ShowOrigin)
}
