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

// Command svb compresses files of 32-bit integers with Stream VByte.
//
// Encoding reads raw little-endian uint32 values and writes a small
// self-describing container: a magic, a flags byte, the element count, and
// the encoded stream, optionally wrapped in zstd. Decoding reverses it.
//
// Usage:
//
//	svb [-zstd] [-scalar] input.u32 output.svb
//	svb -decode [-scalar] input.svb output.u32
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/ajroetker/go-streamvbyte/streamvbyte"
)

var (
	decode    = flag.Bool("decode", false, "decode a .svb container instead of encoding")
	useZstd   = flag.Bool("zstd", false, "wrap the encoded stream in zstd (encode only)")
	useScalar = flag.Bool("scalar", false, "force the scalar backend")
	verbose   = flag.Bool("v", false, "report sizes and the selected backend")
)

// container layout: magic | flags | uint32 count | payload
var magic = [4]byte{'S', 'V', 'B', '1'}

const (
	flagZstd   = 1 << 0
	headerSize = 4 + 1 + 4
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("svb: ")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: svb [flags] input output\n\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	input, output := flag.Arg(0), flag.Arg(1)

	raw, err := os.ReadFile(input)
	if err != nil {
		log.Fatal(err)
	}

	var out []byte
	if *decode {
		out, err = decodeContainer(raw)
	} else {
		out, err = encodeContainer(raw)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(output, out, 0o644); err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("%s: %d bytes -> %d bytes (%s)", input, len(raw), len(out), backendName())
	}
}

func backendName() string {
	switch {
	case *useScalar:
		return "scalar"
	case streamvbyte.AcceleratedEncode() && streamvbyte.AcceleratedDecode():
		return "vector"
	default:
		return "vector/emulated"
	}
}

func encodeContainer(raw []byte) ([]byte, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("input is %d bytes, not a whole number of uint32s", len(raw))
	}
	nums := make([]uint32, len(raw)/4)
	for i := range nums {
		nums[i] = binary.LittleEndian.Uint32(raw[4*i:])
	}

	buf := make([]byte, streamvbyte.MaxEncodedLen(len(nums)))
	var n int
	if *useScalar {
		n = streamvbyte.Encode[streamvbyte.Scalar](nums, buf)
	} else {
		n = streamvbyte.Encode[streamvbyte.Vector](nums, buf)
	}
	payload := buf[:n]

	var flags byte
	if *useZstd {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		payload = enc.EncodeAll(payload, nil)
		enc.Close()
		flags |= flagZstd
	}

	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, magic[:]...)
	out = append(out, flags)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(nums)))
	return append(out, payload...), nil
}

func decodeContainer(raw []byte) ([]byte, error) {
	if len(raw) < headerSize || [4]byte(raw[:4]) != magic {
		return nil, fmt.Errorf("not an svb container")
	}
	flags := raw[4]
	count := int(binary.LittleEndian.Uint32(raw[5:9]))
	payload := raw[headerSize:]

	if flags&flagZstd != 0 {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		if payload, err = dec.DecodeAll(payload, nil); err != nil {
			return nil, err
		}
	}

	nums := make([]uint32, count)
	if *useScalar {
		streamvbyte.Decode[streamvbyte.Scalar](payload, count, nums)
	} else {
		streamvbyte.Decode[streamvbyte.Vector](payload, count, nums)
	}

	out := make([]byte, 4*count)
	for i, num := range nums {
		binary.LittleEndian.PutUint32(out[4*i:], num)
	}
	return out, nil
}
