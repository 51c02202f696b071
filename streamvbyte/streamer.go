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

// StreamEncoder accumulates numbers one at a time and produces a single
// encoded stream at the end. Unlike Encode it owns and grows its buffers,
// which makes it convenient when the number count is not known up front, at
// the cost of allocation. Not safe for concurrent use.
type StreamEncoder struct {
	control []byte
	data    []byte
	pending [4]uint32
	count   int // pending values, 0-3
	total   int // numbers added so far
}

// NewStreamEncoder creates an empty encoder.
func NewStreamEncoder() *StreamEncoder {
	return &StreamEncoder{
		control: make([]byte, 0, 64),
		data:    make([]byte, 0, 256),
	}
}

// Add appends one number.
func (e *StreamEncoder) Add(num uint32) {
	e.pending[e.count] = num
	e.count++
	e.total++
	if e.count == 4 {
		e.flushQuad()
	}
}

// AddBatch appends multiple numbers.
func (e *StreamEncoder) AddBatch(nums []uint32) {
	for _, num := range nums {
		e.Add(num)
	}
}

// Count returns how many numbers have been added.
func (e *StreamEncoder) Count() int {
	return e.total
}

// Finish returns the encoded stream [control bytes || value bytes] and the
// number count a decoder must supply. A trailing partial quad becomes a
// final control byte whose unused lanes carry no value bytes; nothing is
// padded. The encoder is left drained, as after Reset.
func (e *StreamEncoder) Finish() (encoded []byte, count int) {
	if e.count > 0 {
		var control byte
		for i := 0; i < e.count; i++ {
			num := e.pending[i]
			control |= byte(encodedLength(num)-1) << (i * 2)
			e.appendValue(num)
		}
		e.control = append(e.control, control)
		e.count = 0
	}

	encoded = make([]byte, 0, len(e.control)+len(e.data))
	encoded = append(encoded, e.control...)
	encoded = append(encoded, e.data...)
	count = e.total

	e.Reset()
	return encoded, count
}

// Reset drops all accumulated state, keeping the buffers for reuse.
func (e *StreamEncoder) Reset() {
	e.control = e.control[:0]
	e.data = e.data[:0]
	e.count = 0
	e.total = 0
}

func (e *StreamEncoder) flushQuad() {
	var control byte
	for i, num := range e.pending {
		control |= byte(encodedLength(num)-1) << (i * 2)
		e.appendValue(num)
	}
	e.control = append(e.control, control)
	e.count = 0
}

func (e *StreamEncoder) appendValue(num uint32) {
	switch encodedLength(num) {
	case 1:
		e.data = append(e.data, byte(num))
	case 2:
		e.data = append(e.data, byte(num), byte(num>>8))
	case 3:
		e.data = append(e.data, byte(num), byte(num>>8), byte(num>>16))
	case 4:
		e.data = append(e.data, byte(num), byte(num>>8), byte(num>>16), byte(num>>24))
	}
}
