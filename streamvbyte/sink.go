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

// Quad is four decoded numbers, the unit a vector decoder produces.
type Quad [4]uint32

// DecodeSingleSink receives numbers decoded one at a time: everything the
// Scalar decoder produces, plus trailing partial quads from any decoder.
//
// numsDecoded is the number of numbers already delivered before this one in
// the current DecodeCursor operation, i.e. the number's position relative to
// the start of that operation.
type DecodeSingleSink interface {
	OnNumber(num uint32, numsDecoded int)
}

// DecodeQuadSink additionally receives whole quads from decoders that have a
// natural four-at-a-time representation (Vector). A decoder delivers any
// given number through exactly one of the two callbacks.
type DecodeQuadSink interface {
	DecodeSingleSink
	OnQuad(quad Quad, numsDecoded int)
}

// SliceDecodeSink writes decoded numbers into a slice at their position.
// It is the sink behind DecodeCursor.DecodeSlice.
type SliceDecodeSink struct {
	output []uint32
}

// NewSliceDecodeSink returns a sink writing into output. The slice must be
// large enough for every position the decode delivers.
func NewSliceDecodeSink(output []uint32) *SliceDecodeSink {
	return &SliceDecodeSink{output: output}
}

func (s *SliceDecodeSink) OnNumber(num uint32, numsDecoded int) {
	s.output[numsDecoded] = num
}

func (s *SliceDecodeSink) OnQuad(quad Quad, numsDecoded int) {
	copy(s.output[numsDecoded:numsDecoded+4], quad[:])
}
