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

// encodedShape describes how count numbers map onto control bytes.
type encodedShape struct {
	controlBytesLen         int // ceil(count/4)
	completeControlBytesLen int // count/4
	leftoverNumbers         int // count%4, numbers in the trailing partial quad
}

func shapeOf(count int) encodedShape {
	return encodedShape{
		controlBytesLen:         (count + 3) / 4,
		completeControlBytesLen: count / 4,
		leftoverNumbers:         count % 4,
	}
}

// MaxEncodedLen returns the worst-case encoded size of count numbers: four
// value bytes per number plus one control byte per started quad. It is never
// larger than 5*count for count > 0, so a buffer of 5x the input length is
// always sufficient for Encode.
func MaxEncodedLen(count int) int {
	if count <= 0 {
		return 0
	}
	return 4*count + (count+3)/4
}

// EncodedLen returns the exact encoded size of nums, without encoding.
func EncodedLen(nums []uint32) int {
	if len(nums) == 0 {
		return 0
	}
	total := (len(nums) + 3) / 4
	for _, num := range nums {
		total += encodedLength(num)
	}
	return total
}
