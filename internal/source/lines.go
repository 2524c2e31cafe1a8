// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package source

import (
	"bufio"
	"bytes"
	"io"
)

// MaxLineSize is the default maximum size of a source line.
const MaxLineSize = 1024 * 1024

// NewLineScanner returns a scanner over the lines of r with trailing "\r"
// removed. A line of maxLine bytes or more does not stop the scan. It is
// returned as an empty line and onLong is called with its 1-based line
// number.
func NewLineScanner(r io.Reader, maxLine int, onLong func(line int)) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, min(64*1024, maxLine)), maxLine)

	line := 0
	skipping := false
	s.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		if skipping {
			if i := bytes.IndexByte(data, '\n'); i >= 0 {
				skipping = false
				return i + 1, []byte{}, nil
			}
			if atEOF {
				skipping = false
				return len(data), []byte{}, nil
			}
			// Drop what is buffered and keep looking for the end of the line.
			return len(data), nil, nil
		}

		advance, token, err := bufio.ScanLines(data, atEOF)
		if advance == 0 && token == nil && err == nil && len(data) >= maxLine {
			line++
			if onLong != nil {
				onLong(line)
			}
			skipping = true
			return len(data), nil, nil
		}
		if token != nil {
			line++
		}
		return advance, token, err
	})
	return s
}
