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

//go:build arm64

package streamvbyte

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

func init() {
	// NEON tbl covers both directions. Feature registers are not readable
	// from EL0 on darwin, but every Apple arm64 core has ASIMD.
	hasASIMD := cpu.ARM64.HasASIMD || runtime.GOOS == "darwin"
	hasVectorDecode = hasASIMD
	hasVectorEncode = hasASIMD
}
