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

// DecodeCursor is a resumable decoder over one encoded stream. It borrows
// the encoded bytes, tracks how far decoding has progressed, and supports
// partial decodes, skipping, and sink-driven consumption. A cursor is owned
// by a single goroutine; it performs no allocation and no synchronization.
//
// The decoder backend D is fixed at construction.
type DecodeCursor[D Decoder] struct {
	controlBytes []byte
	valueBytes   []byte
	totalCount   int
	numsDecoded  int
	valueOffset  int
}

// NewCursor positions a cursor at the start of encoded, which holds count
// numbers. The first ceil(count/4) bytes are the control region; the rest is
// the value region.
func NewCursor[D Decoder](encoded []byte, count int) *DecodeCursor[D] {
	shape := shapeOf(count)
	return &DecodeCursor[D]{
		controlBytes: encoded[:shape.controlBytesLen],
		valueBytes:   encoded[shape.controlBytesLen:],
		totalCount:   count,
	}
}

// Remaining returns how many numbers have not yet been decoded or skipped.
func (c *DecodeCursor[D]) Remaining() int {
	return c.totalCount - c.numsDecoded
}

// InputConsumed returns how many bytes of the encoded input the cursor has
// consumed so far. The whole control region counts as consumed up front;
// after the last number it equals the exact encoded length.
func (c *DecodeCursor[D]) InputConsumed() int {
	return len(c.controlBytes) + c.valueOffset
}

// DecodeSlice decodes everything remaining into out and returns how many
// numbers were written. out must hold at least Remaining() numbers; panics
// otherwise.
func (c *DecodeCursor[D]) DecodeSlice(out []uint32) int {
	remaining := c.Remaining()
	if len(out) < remaining {
		panic(fmt.Sprintf("streamvbyte: output slice holds %d numbers, %d remaining", len(out), remaining))
	}
	sink := SliceDecodeSink{output: out}
	return c.DecodeSink(&sink, remaining)
}

// DecodeSink decodes at most max numbers into sink and returns how many
// were delivered. Numbers flow in quads of four — through OnQuad from the
// vector kernel, through OnNumber from the scalar tail — plus up to one
// trailing partial quad at the end of the stream. If max is not a multiple
// of four and complete quads remain, decoding stops at the last whole quad
// and the cursor stays resumable.
//
// Positions reported to the sink are relative to this call, starting at 0.
func (c *DecodeCursor[D]) DecodeSink(sink DecodeQuadSink, max int) int {
	var dec D

	if remaining := c.Remaining(); max > remaining {
		max = remaining
	}
	if max <= 0 {
		return 0
	}
	start := c.numsDecoded

	// A Skip can leave the cursor inside a quad; finish that quad one
	// number at a time before quad decoding can resume.
	for c.numsDecoded%4 != 0 && c.numsDecoded-start < max {
		c.decodeOne(sink, c.numsDecoded-start)
	}

	completeLen := c.totalCount / 4

	// Complete quads: the chosen kernel first, then the scalar tail for the
	// quads it left behind.
	quadsWanted := (max - (c.numsDecoded - start)) / 4
	if ctrlIdx := c.numsDecoded / 4; quadsWanted > 0 && ctrlIdx < completeLen {
		n, b := dec.DecodeQuads(
			c.controlBytes[ctrlIdx:completeLen],
			c.valueBytes[c.valueOffset:],
			quadsWanted,
			c.numsDecoded-start,
			sink,
		)
		c.numsDecoded += n
		c.valueOffset += b
		quadsWanted -= n / 4

		if ctrlIdx = c.numsDecoded / 4; quadsWanted > 0 && ctrlIdx < completeLen {
			n, b = Scalar{}.DecodeQuads(
				c.controlBytes[ctrlIdx:completeLen],
				c.valueBytes[c.valueOffset:],
				quadsWanted,
				c.numsDecoded-start,
				sink,
			)
			c.numsDecoded += n
			c.valueOffset += b
		}
	}

	// Trailing partial quad, only once every complete quad is done.
	if c.numsDecoded == completeLen*4 {
		for c.numsDecoded-start < max && c.numsDecoded < c.totalCount {
			c.decodeOne(sink, c.numsDecoded-start)
		}
	}

	return c.numsDecoded - start
}

// Skip advances the cursor past n numbers without delivering them. Whole
// skipped quads cost one table lookup each; a skip that stops inside a quad
// walks that quad's leading lanes. Panics if n exceeds Remaining().
func (c *DecodeCursor[D]) Skip(n int) {
	if n < 0 || n > c.Remaining() {
		panic(fmt.Sprintf("streamvbyte: cannot skip %d of %d remaining numbers", n, c.Remaining()))
	}

	for n > 0 && c.numsDecoded%4 != 0 {
		c.skipOne()
		n--
	}
	for n >= 4 {
		c.valueOffset += int(lengthPerQuad[c.controlBytes[c.numsDecoded/4]])
		c.numsDecoded += 4
		n -= 4
	}
	for n > 0 {
		c.skipOne()
		n--
	}
}

// decodeOne decodes the cursor's current number and hands it to the sink at
// position numsDecoded (relative to the running operation).
func (c *DecodeCursor[D]) decodeOne(sink DecodeSingleSink, numsDecoded int) {
	length := c.currentLength()
	sink.OnNumber(decodeNum(length, c.valueBytes[c.valueOffset:]), numsDecoded)
	c.valueOffset += length
	c.numsDecoded++
}

func (c *DecodeCursor[D]) skipOne() {
	c.valueOffset += c.currentLength()
	c.numsDecoded++
}

// currentLength is the encoded length of the number the cursor points at.
func (c *DecodeCursor[D]) currentLength() int {
	control := c.controlBytes[c.numsDecoded/4]
	return int(lengthPerNum[control][c.numsDecoded%4])
}
