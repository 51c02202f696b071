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

import "math/bits"

// Scalar encodes and decodes with plain byte loads and stores. It works on
// every platform and serves as the tail behind the vector kernels, which
// must stop a few quads short of the end of a buffer.
type Scalar struct{}

// EncodeQuads encodes one quad per control byte. Unlike Vector, it consumes
// every control byte it is given.
func (Scalar) EncodeQuads(input []uint32, controlBytes, out []byte) (numsEncoded, bytesWritten int) {
	for q := range controlBytes {
		len0 := encodeNum(input[numsEncoded], out[bytesWritten:])
		len1 := encodeNum(input[numsEncoded+1], out[bytesWritten+len0:])
		len2 := encodeNum(input[numsEncoded+2], out[bytesWritten+len0+len1:])
		len3 := encodeNum(input[numsEncoded+3], out[bytesWritten+len0+len1+len2:])

		controlBytes[q] = byte((len0 - 1) | (len1-1)<<2 | (len2-1)<<4 | (len3-1)<<6)

		bytesWritten += len0 + len1 + len2 + len3
		numsEncoded += 4
	}
	return numsEncoded, bytesWritten
}

// DecodeQuads decodes up to maxControlBytes quads, delivering every number
// through sink.OnNumber. There is no quad representation on the scalar path,
// so OnQuad is never called.
func (Scalar) DecodeQuads(controlBytes, valueBytes []byte, maxControlBytes, numsAlreadyDecoded int, sink DecodeQuadSink) (numsDecoded, bytesRead int) {
	limit := min(len(controlBytes), maxControlBytes)

	for _, control := range controlBytes[:limit] {
		lens := lengthPerNum[control]
		len0 := int(lens[0])
		len1 := int(lens[1])
		len2 := int(lens[2])
		len3 := int(lens[3])

		sink.OnNumber(decodeNum(len0, valueBytes[bytesRead:]), numsAlreadyDecoded+numsDecoded)
		sink.OnNumber(decodeNum(len1, valueBytes[bytesRead+len0:]), numsAlreadyDecoded+numsDecoded+1)
		sink.OnNumber(decodeNum(len2, valueBytes[bytesRead+len0+len1:]), numsAlreadyDecoded+numsDecoded+2)
		sink.OnNumber(decodeNum(len3, valueBytes[bytesRead+len0+len1+len2:]), numsAlreadyDecoded+numsDecoded+3)

		bytesRead += len0 + len1 + len2 + len3
		numsDecoded += 4
	}
	return numsDecoded, bytesRead
}

// encodedLength returns the number of bytes needed to encode num, in [1, 4].
// Zero still takes one byte.
func encodedLength(num uint32) int {
	return max(1, 4-bits.LeadingZeros32(num)/8)
}

// encodeNum writes the low encodedLength(num) bytes of num to out,
// little-endian, and returns the length.
func encodeNum(num uint32, out []byte) int {
	length := encodedLength(num)
	for i := 0; i < length; i++ {
		out[i] = byte(num >> (8 * i))
	}
	return length
}

// decodeNum zero-extends the first length little-endian bytes of in.
func decodeNum(length int, in []byte) uint32 {
	var num uint32
	for i := 0; i < length; i++ {
		num |= uint32(in[i]) << (8 * i)
	}
	return num
}
