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

// Package imageproc normalizes downloaded images into the stored preview
// form: downscaled so the longer edge fits the configured bound, encoded as
// lossless WebP. A source that is already WebP and within bounds is passed
// through untouched.
package imageproc

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"runtime"

	// Decoders registered for format sniffing via image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"golang.org/x/sync/semaphore"
)

func init() {
	image.RegisterFormat("webp", "RIFF????WEBP", webp.Decode, webp.DecodeConfig)
}

// cpuGate bounds concurrent decode/resample/encode work to the CPU count so a
// burst of oversized images cannot stall every worker at once.
var cpuGate = semaphore.NewWeighted(int64(runtime.NumCPU()))

// ErrorKind classifies normalization failures.
type ErrorKind int

const (
	FormatUnknown ErrorKind = iota
	DecodeError
	ResampleError
	EncodeError
	IoError
)

func (k ErrorKind) String() string {
	switch k {
	case FormatUnknown:
		return "cannot determine image format"
	case DecodeError:
		return "image decode error"
	case ResampleError:
		return "resample error"
	case EncodeError:
		return "image encode error"
	default:
		return "io error"
	}
}

// Error is a classified normalization failure.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

// Preview is the outcome of normalizing one image.
type Preview struct {
	// Bytes is the lossless WebP encoding of the (possibly downscaled)
	// image. Nil when Unchanged is set.
	Bytes []byte
	// Unchanged reports that the source is already WebP and within bounds;
	// the caller stores the source bytes as-is.
	Unchanged bool
}

// Normalize sniffs the format of data by magic numbers (the origin's MIME is
// not trusted), decodes, downscales so the longer edge equals maxEdge when
// either dimension reaches it, and encodes as lossless WebP.
func Normalize(ctx context.Context, data []byte, maxEdge int) (Preview, *Error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Preview{}, &Error{Kind: FormatUnknown, Msg: err.Error()}
	}

	if err := cpuGate.Acquire(ctx, 1); err != nil {
		return Preview{}, &Error{Kind: IoError, Msg: err.Error()}
	}
	defer cpuGate.Release(1)

	if cfg.Width < maxEdge && cfg.Height < maxEdge {
		if format == "webp" {
			return Preview{Unchanged: true}, nil
		}
		// Small but not WebP: normalize the stored format without scaling.
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return Preview{}, &Error{Kind: DecodeError, Msg: err.Error()}
		}
		return encodePreview(img)
	}

	width, height := targetBounds(cfg.Width, cfg.Height, maxEdge)
	if width == 0 || height == 0 {
		return Preview{}, &Error{
			Kind: ResampleError,
			Msg:  fmt.Sprintf("degenerate target %dx%d for source %dx%d", width, height, cfg.Width, cfg.Height),
		}
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return Preview{}, &Error{Kind: DecodeError, Msg: err.Error()}
	}
	return encodePreview(imaging.Resize(img, width, height, imaging.Lanczos))
}

// targetBounds scales (w, h) so the longer edge equals maxEdge, preserving
// aspect ratio with truncating float math. A sufficiently skewed ratio can
// truncate the short edge to zero; callers reject that as a resample failure.
func targetBounds(w, h, maxEdge int) (int, int) {
	ratio := float32(w) / float32(h)
	if ratio < 1.0 {
		return int(float32(maxEdge) * ratio), maxEdge
	}
	return maxEdge, int(float32(maxEdge) / ratio)
}

func encodePreview(img image.Image) (Preview, *Error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
		return Preview{}, &Error{Kind: EncodeError, Msg: err.Error()}
	}
	return Preview{Bytes: buf.Bytes()}, nil
}
