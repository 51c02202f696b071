// Copyright 2026 go-streamvbyte Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package streamvbyte

import "github.com/ajroetker/go-highway/hwy"

// Capability flags, set by the dispatch_*.go file for the build's
// architecture. The Vector backend is always usable — hwy falls back to
// scalar emulation of the byte shuffles — but only counts as accelerated
// when the hardware has the single-instruction shuffle it is built around.
var (
	hasVectorEncode bool
	hasVectorDecode bool
)

// AcceleratedEncode reports whether the Vector encoder runs on hardware
// byte shuffles on this machine (SSE4.1 on amd64, NEON on arm64). Setting
// HWY_NO_SIMD forces false.
func AcceleratedEncode() bool {
	return hasVectorEncode && !hwy.NoSimdEnv()
}

// AcceleratedDecode reports whether the Vector decoder runs on hardware
// byte shuffles on this machine (SSSE3 on amd64, NEON on arm64). Setting
// HWY_NO_SIMD forces false.
func AcceleratedDecode() bool {
	return hasVectorDecode && !hwy.NoSimdEnv()
}
