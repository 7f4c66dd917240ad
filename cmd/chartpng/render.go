package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/roffe/litechart/pkg/chart"
	"github.com/roffe/litechart/pkg/paint"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// renderJob writes <out>/<name>.png and, with -trace, <out>/<name>.json.
func renderJob(j job, opts options) (string, error) {
	ropts := []chart.RendererOpt{
		chart.WithDiagnostics(func(msg string) {
			log.Printf("%s: %s", j.name, msg)
		}),
	}
	if opts.font != nil {
		// faces keep glyph buffers, so every job gets its own
		face, err := newFace(opts.font, opts.fontSize)
		if err != nil {
			return "", err
		}
		defer face.Close()
		ropts = append(ropts, chart.WithFace(face))
	}
	r, err := chart.New(j.cfg, ropts...)
	if err != nil {
		return "", err
	}
	if err := r.Attach(opts.width, opts.height); err != nil {
		return "", err
	}

	base := filepath.Join(opts.outDir, fileName(j.name))
	if opts.trace {
		b, err := trace(r)
		if err != nil {
			return "", err
		}
		if err := os.WriteFile(base+".json", b, 0644); err != nil {
			return "", err
		}
	}

	b, err := encodePNG(scale(r.Surface(), opts.scale))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(base+".png", b, 0644); err != nil {
		return "", err
	}
	return base + ".png", nil
}

// trace replays the chart into a recorder of the surface size.
func trace(r *chart.Renderer) ([]byte, error) {
	size := r.Surface().Bounds().Size()
	rec := paint.NewRecorder(size.X, size.Y)
	if err := r.Draw(rec); err != nil {
		return nil, err
	}
	return json.MarshalIndent(rec, "", "  ")
}

func scale(src *image.RGBA, factor float64) *image.RGBA {
	if factor <= 0 || factor == 1 {
		return src
	}
	b := src.Bounds()
	w := int(math.Round(float64(b.Dx()) * factor))
	h := int(math.Round(float64(b.Dy()) * factor))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fileName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		return "chart"
	}
	return name
}

func loadFont(path string) (*opentype.Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
