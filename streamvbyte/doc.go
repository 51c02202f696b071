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

// Package streamvbyte encodes and decodes sequences of uint32 values with
// the Stream VByte format.
//
// Stream VByte is a variable-length integer codec that separates length
// metadata from value bytes: every group of four numbers (a "quad") emits
// one control byte whose four 2-bit fields hold the byte length of each
// number, followed by the numbers' little-endian low-order bytes packed
// without padding. Keeping all control bytes in front of all value bytes
// lets a decoder turn one control byte into a 16-byte shuffle mask and
// unpack four numbers per table-lookup instruction.
//
// An encoded stream is [control bytes || value bytes] with ceil(count/4)
// control bytes. The element count is not stored; callers exchange it out
// of band and pass it back to Decode or NewCursor.
//
// Backends are chosen at compile time through a type parameter: Scalar
// works everywhere using plain byte loads and stores, Vector goes through
// the hwy portable SIMD layer (pshufb-class byte shuffles on amd64, NEON
// tbl on arm64). Both produce byte-identical output.
//
//	nums := []uint32{1, 2, 3, 1 << 20}
//	buf := make([]byte, streamvbyte.MaxEncodedLen(len(nums)))
//	n := streamvbyte.Encode[streamvbyte.Vector](nums, buf)
//
//	out := make([]uint32, len(nums))
//	streamvbyte.Decode[streamvbyte.Vector](buf[:n], len(nums), out)
//
// For partial decoding, skipping, or streaming numbers into a consumer,
// use DecodeCursor.
package streamvbyte
