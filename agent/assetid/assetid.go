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

// Package assetid derives the content-addressable identifier under which an
// asset's preview is stored. The identifier is base58(Keccak-256(url)), so the
// same URL always maps to the same storage key and distinct URLs are assumed
// not to collide.
package assetid

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"
)

// ForURL returns the asset ID for the given URL.
func ForURL(url string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(url))
	return base58.Encode(h.Sum(nil))
}
