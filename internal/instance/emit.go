// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package instance

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"strconv"
)

// Header is the first line of every canonical file.
const Header = "# Converted instance (txt-only robust)"

var headerPattern = regexp.MustCompile(`(?i)^\s*#\s*Converted instance`)

// IsHeader reports whether line marks a file as already canonical.
func IsHeader(line string) bool {
	return headerPattern.MatchString(line)
}

// Write serializes inst in the canonical format. No validation is performed;
// the instance is written as assembled.
func Write(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(Header)
	bw.WriteByte('\n')
	writeScalar(bw, "M=", inst.M)
	writeScalar(bw, "C=", inst.C)
	writeScalar(bw, "N=", inst.N)

	bw.WriteString("costs:")
	for _, c := range inst.Costs {
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(c))
	}
	bw.WriteByte('\n')

	bw.WriteString("jobs:\n")
	for _, job := range inst.Jobs {
		writeInts(bw, job)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Format returns the canonical text of inst.
func Format(inst *Instance) []byte {
	var buf bytes.Buffer
	// Writes into a bytes.Buffer cannot fail.
	_ = Write(&buf, inst)
	return buf.Bytes()
}

func writeScalar(bw *bufio.Writer, label string, v int) {
	bw.WriteString(label)
	bw.WriteString(strconv.Itoa(v))
	bw.WriteByte('\n')
}

func writeInts(bw *bufio.Writer, values []int) {
	for i, v := range values {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(v))
	}
}
