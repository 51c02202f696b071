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

// Encoder turns quads of numbers into control bytes and packed value bytes.
// Scalar and Vector implement it; the type is selected at compile time as a
// type parameter, never per quad.
type Encoder interface {
	// EncodeQuads encodes complete quads of input. controlBytes is exactly
	// as long as the number of quads the caller wants encoded; value bytes
	// go to out at offset 0. Implementations may encode fewer quads than
	// given (the vector kernel stops short of the end to keep its 16-byte
	// stores in bounds) but every write must be a whole quad. Returns the
	// numbers encoded and the value bytes written.
	EncodeQuads(input []uint32, controlBytes, out []byte) (numsEncoded, bytesWritten int)
}

// Encode encodes input into output and returns the number of bytes written.
//
// output must be large enough for the encoded stream: MaxEncodedLen of the
// input length always suffices, as does 5x the input length. Encoding is
// deterministic and backend-independent; Scalar and Vector emit identical
// bytes. Panics if output is too small.
//
// The element count is not part of the stream. Keep it; Decode needs it.
func Encode[E Encoder](input []uint32, output []byte) int {
	if len(input) == 0 {
		return 0
	}

	var enc E
	shape := shapeOf(len(input))

	controlBytes := output[:shape.controlBytesLen]
	valueBytes := output[shape.controlBytesLen:]

	numsEncoded, bytesWritten := enc.EncodeQuads(
		input,
		controlBytes[:shape.completeControlBytesLen],
		valueBytes,
	)

	// The kernel may leave trailing quads; Scalar always finishes them.
	moreNums, moreBytes := Scalar{}.EncodeQuads(
		input[numsEncoded:],
		controlBytes[numsEncoded/4:shape.completeControlBytesLen],
		valueBytes[bytesWritten:],
	)
	numsEncoded += moreNums
	bytesWritten += moreBytes

	if shape.leftoverNumbers > 0 {
		var control byte
		for i := 0; i < shape.leftoverNumbers; i++ {
			length := encodeNum(input[numsEncoded], valueBytes[bytesWritten:])
			control |= byte(length-1) << (i * 2)
			bytesWritten += length
			numsEncoded++
		}
		controlBytes[shape.completeControlBytesLen] = control
	}

	return shape.controlBytesLen + bytesWritten
}
