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

// Precomputed per-control-byte tables. A control byte holds four 2-bit
// fields, field i encoding (length of number i) - 1 with field 0 in the two
// least-significant bits.

// zeroFill is a shuffle index that lies outside any 16-byte vector, so
// TableLookupBytes produces zero for it.
const zeroFill = 0xFF

// lengthPerQuad[control] = total number of value bytes for a quad with this
// control byte, in [4, 16].
var lengthPerQuad [256]uint8

// lengthPerNum[control] = the four per-number lengths, each in [1, 4].
var lengthPerNum [256][4]uint8

// decodeShuffle[control] maps each of the 16 output byte positions (four
// little-endian uint32 lanes) to the index of its source byte in the packed
// value stream, zeroFill for the high bytes of numbers shorter than 4.
var decodeShuffle [256][16]uint8

// encodeShuffle[control] is the inverse permutation: it moves the retained
// low bytes of four uint32 lanes down into a contiguous prefix. Positions at
// or beyond the quad's encoded length are zeroFill; a vector encoder stores
// all 16 bytes and later quads overwrite the zeroed tail.
var encodeShuffle [256][16]uint8

func init() {
	for control := 0; control < 256; control++ {
		len0 := ((control >> 0) & 0x3) + 1
		len1 := ((control >> 2) & 0x3) + 1
		len2 := ((control >> 4) & 0x3) + 1
		len3 := ((control >> 6) & 0x3) + 1

		lengthPerQuad[control] = uint8(len0 + len1 + len2 + len3)
		lengthPerNum[control] = [4]uint8{uint8(len0), uint8(len1), uint8(len2), uint8(len3)}

		var decode, encode [16]uint8
		for i := range decode {
			decode[i] = zeroFill
			encode[i] = zeroFill
		}

		packed := 0
		for lane, length := range []int{len0, len1, len2, len3} {
			for b := 0; b < length; b++ {
				decode[4*lane+b] = uint8(packed)
				encode[packed] = uint8(4*lane + b)
				packed++
			}
		}

		decodeShuffle[control] = decode
		encodeShuffle[control] = encode
	}
}

// ValueLen returns the total number of value bytes described by the given
// control bytes. Every control byte is treated as a complete quad, so this
// overcounts a trailing partial quad's unused lanes; use it on the complete
// control bytes of a stream, or to size buffers.
func ValueLen(controlBytes []byte) int {
	total := 0
	for _, control := range controlBytes {
		total += int(lengthPerQuad[control])
	}
	return total
}
