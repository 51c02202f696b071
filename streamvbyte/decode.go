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

import "fmt"

// Decoder turns control bytes plus packed value bytes back into numbers,
// delivered to a sink. Scalar and Vector implement it.
type Decoder interface {
	// DecodeQuads decodes complete quads only: every control byte passed in
	// has four encoded numbers (no trailing partial quad). Implementations
	// decode at most maxControlBytes control bytes and may decode fewer
	// (the vector kernel stops short of the end to keep its 16-byte loads
	// in bounds). Decoded numbers reach the sink through OnQuad or
	// OnNumber with positions offset by numsAlreadyDecoded. Returns the
	// numbers decoded (a multiple of 4) and the value bytes read.
	DecodeQuads(controlBytes, valueBytes []byte, maxControlBytes, numsAlreadyDecoded int, sink DecodeQuadSink) (numsDecoded, bytesRead int)
}

// Decode decodes count numbers from input into output and returns the
// number of bytes read. count must be the number of values originally
// encoded, and output must hold at least count numbers; panics otherwise,
// as it does if input is truncated.
func Decode[D Decoder](input []byte, count int, output []uint32) int {
	cursor := NewCursor[D](input, count)

	if decoded := cursor.DecodeSlice(output); decoded != count {
		panic(fmt.Sprintf("streamvbyte: decoded %d of %d numbers", decoded, count))
	}

	return cursor.InputConsumed()
}
