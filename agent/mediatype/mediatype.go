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

// Package mediatype classifies origin Content-Type strings into the coarse
// asset classes the ingestion pipeline cares about.
package mediatype

import "strings"

// OctetStream is the MIME string assumed when the origin reports nothing usable.
const OctetStream = "application/octet-stream"

// Class is the coarse asset class of a MIME type.
type Class int

const (
	Other Class = iota
	Image
	Video
)

func (c Class) String() string {
	switch c {
	case Image:
		return "image"
	case Video:
		return "video"
	default:
		return "other"
	}
}

// Mime pairs the origin's MIME string with its asset class.
type Mime struct {
	Text  string
	Class Class
}

// Parse classifies a Content-Type header value. Classification is by prefix
// only; parameters ("image/png; charset=...") are deliberately not stripped
// since the prefix match does not care.
func Parse(contentType string) Mime {
	class := Other
	switch {
	case strings.HasPrefix(contentType, "image"):
		class = Image
	case strings.HasPrefix(contentType, "video"):
		class = Video
	}
	return Mime{Text: contentType, Class: class}
}

// Default returns the Mime assumed for absent or unparseable content types.
func Default() Mime {
	return Mime{Text: OctetStream, Class: Other}
}
