/*
Copyright 2019 Google Inc. All Rights Reserved.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package imageproc

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 64, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatalf("png.Encode got err: %v", err)
	}
	return buf.Bytes()
}

func webpBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := webp.Encode(&buf, testImage(w, h), &webp.Options{Lossless: true}); err != nil {
		t.Fatalf("webp.Encode got err: %v", err)
	}
	return buf.Bytes()
}

func decodeDims(t *testing.T, data []byte) (string, int, int) {
	t.Helper()
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig on preview got err: %v", err)
	}
	return format, cfg.Width, cfg.Height
}

func TestNormalizeDownscalesLandscape(t *testing.T) {
	preview, err := Normalize(context.Background(), pngBytes(t, 600, 400), 400)
	if err != nil {
		t.Fatalf("Normalize got err: %v", err)
	}
	if preview.Unchanged {
		t.Fatal("Normalize reported Unchanged for an oversized PNG")
	}
	format, w, h := decodeDims(t, preview.Bytes)
	if format != "webp" {
		t.Errorf("preview format = %q, want webp", format)
	}
	// 600x400 bounded by 400: ratio 1.5, truncating short edge math.
	if w != 400 || h != 266 {
		t.Errorf("preview dims = %dx%d, want 400x266", w, h)
	}
}

func TestNormalizeDownscalesPortrait(t *testing.T) {
	preview, err := Normalize(context.Background(), pngBytes(t, 400, 600), 400)
	if err != nil {
		t.Fatalf("Normalize got err: %v", err)
	}
	format, w, h := decodeDims(t, preview.Bytes)
	if format != "webp" || w != 266 || h != 400 {
		t.Errorf("preview = %q %dx%d, want webp 266x400", format, w, h)
	}
}

func TestNormalizeSmallPngReencoded(t *testing.T) {
	preview, err := Normalize(context.Background(), pngBytes(t, 100, 80), 400)
	if err != nil {
		t.Fatalf("Normalize got err: %v", err)
	}
	if preview.Unchanged {
		t.Fatal("small PNG must be re-encoded, not passed through")
	}
	format, w, h := decodeDims(t, preview.Bytes)
	if format != "webp" || w != 100 || h != 80 {
		t.Errorf("preview = %q %dx%d, want webp 100x80", format, w, h)
	}
}

func TestNormalizeSmallWebpUnchanged(t *testing.T) {
	preview, err := Normalize(context.Background(), webpBytes(t, 100, 80), 400)
	if err != nil {
		t.Fatalf("Normalize got err: %v", err)
	}
	if !preview.Unchanged {
		t.Fatal("small WebP must be passed through unchanged")
	}
	if preview.Bytes != nil {
		t.Errorf("Unchanged preview carries %d bytes, want none", len(preview.Bytes))
	}
}

func TestNormalizeOversizedWebpResized(t *testing.T) {
	preview, err := Normalize(context.Background(), webpBytes(t, 800, 600), 400)
	if err != nil {
		t.Fatalf("Normalize got err: %v", err)
	}
	if preview.Unchanged {
		t.Fatal("oversized WebP must be downscaled")
	}
	format, w, h := decodeDims(t, preview.Bytes)
	if format != "webp" || w != 400 || h != 300 {
		t.Errorf("preview = %q %dx%d, want webp 400x300", format, w, h)
	}
}

func TestNormalizeExactBoundResized(t *testing.T) {
	// A dimension equal to the bound counts as needing a resize.
	preview, err := Normalize(context.Background(), pngBytes(t, 400, 200), 400)
	if err != nil {
		t.Fatalf("Normalize got err: %v", err)
	}
	_, w, _ := decodeDims(t, preview.Bytes)
	if w != 400 {
		t.Errorf("preview width = %d, want 400", w)
	}
}

func TestNormalizeGarbage(t *testing.T) {
	_, err := Normalize(context.Background(), []byte("certainly not an image"), 400)
	if err == nil || err.Kind != FormatUnknown {
		t.Fatalf("Normalize(garbage) got %v, want kind %v", err, FormatUnknown)
	}
}

func TestNormalizeDegenerateRatio(t *testing.T) {
	// 1x1000 at bound 400 truncates the short edge to zero.
	_, err := Normalize(context.Background(), pngBytes(t, 1, 1000), 400)
	if err == nil || err.Kind != ResampleError {
		t.Fatalf("Normalize(1x1000) got %v, want kind %v", err, ResampleError)
	}
}

func TestTargetBounds(t *testing.T) {
	tests := []struct {
		w, h, maxEdge int
		wantW, wantH  int
	}{
		{600, 400, 400, 400, 266},
		{400, 600, 400, 266, 400},
		{800, 800, 400, 400, 400},
		{1000, 10, 100, 100, 1},
	}
	for _, tc := range tests {
		gotW, gotH := targetBounds(tc.w, tc.h, tc.maxEdge)
		if gotW != tc.wantW || gotH != tc.wantH {
			t.Errorf("targetBounds(%d, %d, %d) = %dx%d, want %dx%d",
				tc.w, tc.h, tc.maxEdge, gotW, gotH, tc.wantW, tc.wantH)
		}
	}
}
