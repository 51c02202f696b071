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

// Vector encodes and decodes quads through the hwy portable SIMD layer: one
// byte shuffle per quad (pshufb-class on amd64, NEON tbl on arm64), driven
// by the precomputed per-control-byte masks.
//
// Both kernels touch 16 bytes of the value region per quad regardless of the
// quad's actual encoded length, so they stop three quads short of the end of
// their range; the driver finishes those with Scalar. The three remaining
// quads hold at least 12 value bytes, which keeps every 16-byte access
// inside the caller's buffer.
type Vector struct{}

// vectorTailQuads is the number of trailing complete quads a Vector kernel
// leaves for the scalar tail. A quad's logical length can be as small as 4
// bytes, so a 16-byte access may reach 12 bytes past it; three quads of at
// least 4 bytes each cover that reach.
const vectorTailQuads = 3

// EncodeQuads encodes up to len(controlBytes)-3 quads. For each quad it
// derives the four lane lengths from leading-zero counts, packs the control
// byte, and shuffles the retained low bytes into a contiguous 16-byte store.
// Bytes of the store past the quad's encoded length are zero and are
// overwritten by the quads that follow.
func (Vector) EncodeQuads(input []uint32, controlBytes, out []byte) (numsEncoded, bytesWritten int) {
	limit := max(0, len(controlBytes)-vectorTailQuads)

	one := hwy.Set[uint32](1)
	four := hwy.Set[uint32](4)

	for q := 0; q < limit; q++ {
		if bytesWritten+16 > len(out) {
			break
		}

		nums := hwy.Load(input[numsEncoded : numsEncoded+4])

		// length_i = max(1, 4 - leading_zero_bytes_i)
		clzBytes := hwy.ShiftRight(hwy.LeadingZeroCount(nums), 3)
		lengths := hwy.Max(one, hwy.Sub(four, clzBytes))

		var lens [4]uint32
		hwy.Store(lengths, lens[:])

		control := byte((lens[0] - 1) | (lens[1]-1)<<2 | (lens[2]-1)<<4 | (lens[3]-1)<<6)
		quadLen := int(lens[0] + lens[1] + lens[2] + lens[3])

		var src [16]uint8
		for lane := 0; lane < 4; lane++ {
			num := input[numsEncoded+lane]
			src[4*lane] = uint8(num)
			src[4*lane+1] = uint8(num >> 8)
			src[4*lane+2] = uint8(num >> 16)
			src[4*lane+3] = uint8(num >> 24)
		}

		mask := hwy.Load(encodeShuffle[control][:])
		packed := hwy.TableLookupBytes(hwy.Load(src[:]), mask)
		hwy.Store(packed, out[bytesWritten:bytesWritten+16])

		controlBytes[q] = control
		bytesWritten += quadLen
		numsEncoded += 4
	}
	return numsEncoded, bytesWritten
}

// DecodeQuads decodes up to min(maxControlBytes, len(controlBytes)-3)
// quads: a 16-byte load of packed value bytes, one table lookup with the
// control byte's shuffle mask, and the four zero-extended lanes go to
// sink.OnQuad.
func (Vector) DecodeQuads(controlBytes, valueBytes []byte, maxControlBytes, numsAlreadyDecoded int, sink DecodeQuadSink) (numsDecoded, bytesRead int) {
	limit := min(maxControlBytes, max(0, len(controlBytes)-vectorTailQuads))

	for _, control := range controlBytes[:limit] {
		if bytesRead+16 > len(valueBytes) {
			break
		}

		data := hwy.Load(valueBytes[bytesRead : bytesRead+16])
		mask := hwy.Load(decodeShuffle[control][:])
		shuffled := hwy.TableLookupBytes(data, mask)

		var lanes [16]uint8
		hwy.Store(shuffled, lanes[:])

		quad := Quad{
			uint32(lanes[0]) | uint32(lanes[1])<<8 | uint32(lanes[2])<<16 | uint32(lanes[3])<<24,
			uint32(lanes[4]) | uint32(lanes[5])<<8 | uint32(lanes[6])<<16 | uint32(lanes[7])<<24,
			uint32(lanes[8]) | uint32(lanes[9])<<8 | uint32(lanes[10])<<16 | uint32(lanes[11])<<24,
			uint32(lanes[12]) | uint32(lanes[13])<<8 | uint32(lanes[14])<<16 | uint32(lanes[15])<<24,
		}
		sink.OnQuad(quad, numsAlreadyDecoded+numsDecoded)

		bytesRead += int(lengthPerQuad[control])
		numsDecoded += 4
	}
	return numsDecoded, bytesRead
}
