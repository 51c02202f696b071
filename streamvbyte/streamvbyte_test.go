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

import (
	"bytes"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

// randomNums mixes the four length classes so every control byte pattern
// shows up. Seeded for reproducibility.
func randomNums(rng *rand.Rand, count int) []uint32 {
	nums := make([]uint32, count)
	for i := range nums {
		bits := uint(rng.Intn(32) + 1)
		nums[i] = rng.Uint32() >> (32 - bits)
	}
	return nums
}

func encodeWith[E Encoder](t *testing.T, nums []uint32) []byte {
	t.Helper()
	buf := make([]byte, MaxEncodedLen(len(nums))+16)
	n := Encode[E](nums, buf)
	if want := EncodedLen(nums); n != want {
		t.Fatalf("Encode returned %d bytes, EncodedLen says %d", n, want)
	}
	return buf[:n]
}

func TestEncodeGolden(t *testing.T) {
	tests := []struct {
		name string
		nums []uint32
		want []byte
	}{
		{
			name: "empty",
			nums: nil,
			want: []byte{},
		},
		{
			name: "single zero",
			nums: []uint32{0},
			want: []byte{0x00, 0x00},
		},
		{
			name: "four ascending length classes",
			nums: []uint32{0, 1, 256, 65536},
			// control: lane0 len1, lane1 len1, lane2 len2, lane3 len3
			want: []byte{0x90, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 0x01},
		},
		{
			name: "max quad",
			nums: []uint32{math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32},
			want: append([]byte{0xFF}, bytes.Repeat([]byte{0xFF}, 16)...),
		},
		{
			name: "five zeros spill into second control byte",
			nums: []uint32{0, 0, 0, 0, 0},
			want: []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeWith[Scalar](t, tt.nums)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Encode[Scalar](%v) = %#v, want %#v", tt.nums, got, tt.want)
			}
			if gotVec := encodeWith[Vector](t, tt.nums); !bytes.Equal(gotVec, tt.want) {
				t.Errorf("Encode[Vector](%v) = %#v, want %#v", tt.nums, gotVec, tt.want)
			}
		})
	}
}

func TestEncodeEmptyWritesNothing(t *testing.T) {
	if n := Encode[Scalar](nil, nil); n != 0 {
		t.Errorf("Encode[Scalar](nil) = %d, want 0", n)
	}
	if n := Encode[Vector](nil, nil); n != 0 {
		t.Errorf("Encode[Vector](nil) = %d, want 0", n)
	}
}

func TestSingleNumberLengthClasses(t *testing.T) {
	for _, num := range []uint32{0x00, 0xFF, 0x1_0000, 0x1000_0000, math.MaxUint32} {
		encoded := encodeWith[Scalar](t, []uint32{num})
		if want := 1 + encodedLength(num); len(encoded) != want {
			t.Errorf("encoded length of %#x: got %d, want %d", num, len(encoded), want)
		}

		out := make([]uint32, 1)
		if read := Decode[Scalar](encoded, 1, out); read != len(encoded) {
			t.Errorf("Decode read %d bytes of %d", read, len(encoded))
		}
		if out[0] != num {
			t.Errorf("round trip of %#x: got %#x", num, out[0])
		}
	}
}

func TestRoundTripBothBackends(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// 52..55 crosses the 13-full-quads boundary where the vector kernels
	// hand the last three quads to the scalar tail.
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 12, 13, 16, 17, 52, 53, 54, 55, 100, 1000, 4096}

	for _, size := range sizes {
		nums := randomNums(rng, size)
		encoded := encodeWith[Scalar](t, nums)

		for _, backend := range []string{"scalar", "vector"} {
			out := make([]uint32, size)
			var read int
			if backend == "scalar" {
				read = Decode[Scalar](encoded, size, out)
			} else {
				read = Decode[Vector](encoded, size, out)
			}
			if read != len(encoded) {
				t.Errorf("size %d %s: read %d bytes of %d", size, backend, read, len(encoded))
			}
			if size > 0 && !reflect.DeepEqual(out, nums) {
				t.Errorf("size %d %s: round trip mismatch", size, backend)
			}
		}
	}
}

func TestBackendsEncodeIdenticalBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, size := range []int{1, 4, 5, 15, 16, 17, 52, 53, 64, 333, 1000} {
		nums := randomNums(rng, size)
		scalar := encodeWith[Scalar](t, nums)
		vector := encodeWith[Vector](t, nums)
		if !bytes.Equal(scalar, vector) {
			t.Errorf("size %d: scalar and vector encodings differ", size)
		}
	}
}

func TestLengthConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for _, size := range []int{1, 3, 4, 50, 512} {
		nums := randomNums(rng, size)
		encoded := encodeWith[Scalar](t, nums)

		want := (size + 3) / 4
		for _, num := range nums {
			want += encodedLength(num)
		}
		if len(encoded) != want {
			t.Errorf("size %d: encoded %d bytes, want %d", size, len(encoded), want)
		}
	}
}

func TestPartialQuadLeftovers(t *testing.T) {
	base := []uint32{0x01, 0x200, 0x3_0000, 0x400_0000, 0x5, 0x600, 0x7_0000}

	for leftover := 1; leftover <= 3; leftover++ {
		nums := base[:4+leftover]
		encoded := encodeWith[Scalar](t, nums)

		// The final control byte holds leftover lanes low to high; unused
		// lanes are zero and carry no value bytes.
		lastControl := encoded[1]
		for lane := 0; lane < leftover; lane++ {
			want := encodedLength(nums[4+lane]) - 1
			if got := int(lastControl>>(2*lane)) & 3; got != want {
				t.Errorf("leftover %d lane %d: control code %d, want %d", leftover, lane, got, want)
			}
		}
		for lane := leftover; lane < 4; lane++ {
			if got := int(lastControl>>(2*lane)) & 3; got != 0 {
				t.Errorf("leftover %d lane %d: unused lane code %d, want 0", leftover, lane, got)
			}
		}

		out := make([]uint32, len(nums))
		Decode[Vector](encoded, len(nums), out)
		if !reflect.DeepEqual(out, nums) {
			t.Errorf("leftover %d: round trip mismatch", leftover)
		}
	}
}

func TestThousandAscending(t *testing.T) {
	nums := make([]uint32, 1000)
	for i := range nums {
		nums[i] = uint32(i)
	}

	scalar := encodeWith[Scalar](t, nums)
	vector := encodeWith[Vector](t, nums)
	if !bytes.Equal(scalar, vector) {
		t.Fatal("scalar and vector encodings differ")
	}

	out := make([]uint32, 1000)
	Decode[Vector](scalar, 1000, out)
	if !reflect.DeepEqual(out, nums) {
		t.Error("round trip mismatch")
	}
}

func TestMaxEncodedLen(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 5},
		{4, 17},
		{5, 22},
		{1000, 4250},
	}

	for _, tt := range tests {
		if got := MaxEncodedLen(tt.count); got != tt.want {
			t.Errorf("MaxEncodedLen(%d) = %d, want %d", tt.count, got, tt.want)
		}
		// the simple 5x rule is never smaller than the exact bound
		if tt.count > 0 && 5*tt.count < MaxEncodedLen(tt.count) {
			t.Errorf("5*%d < MaxEncodedLen(%d)", tt.count, tt.count)
		}
	}
}

func TestDecodePanicsOnShortOutput(t *testing.T) {
	nums := []uint32{1, 2, 3, 4, 5}
	encoded := encodeWith[Scalar](t, nums)

	defer func() {
		if recover() == nil {
			t.Error("Decode with short output did not panic")
		}
	}()
	Decode[Scalar](encoded, len(nums), make([]uint32, 2))
}

func TestDecodePanicsOnTruncatedInput(t *testing.T) {
	nums := []uint32{1 << 30, 2 << 20, 3 << 10, 4, 5}
	encoded := encodeWith[Scalar](t, nums)

	defer func() {
		if recover() == nil {
			t.Error("Decode of truncated input did not panic")
		}
	}()
	Decode[Scalar](encoded[:len(encoded)-3], len(nums), make([]uint32, len(nums)))
}

func BenchmarkEncodeScalar(b *testing.B) {
	benchmarkEncode[Scalar](b)
}

func BenchmarkEncodeVector(b *testing.B) {
	benchmarkEncode[Vector](b)
}

func benchmarkEncode[E Encoder](b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	nums := randomNums(rng, 4096)
	out := make([]byte, MaxEncodedLen(len(nums)))

	b.SetBytes(int64(4 * len(nums)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode[E](nums, out)
	}
}

func BenchmarkDecodeScalar(b *testing.B) {
	benchmarkDecode[Scalar](b)
}

func BenchmarkDecodeVector(b *testing.B) {
	benchmarkDecode[Vector](b)
}

func benchmarkDecode[D Decoder](b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	nums := randomNums(rng, 4096)
	encoded := make([]byte, MaxEncodedLen(len(nums)))
	n := Encode[Scalar](nums, encoded)
	out := make([]uint32, len(nums))

	b.SetBytes(int64(4 * len(nums)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Decode[D](encoded[:n], len(nums), out)
	}
}
