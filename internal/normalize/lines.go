// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package normalize

import (
	"strings"

	"github.com/vk/tsconv/internal/instance"
)

// Lines splits raw source text into comment-stripped, non-blank lines in
// source order. A line is cut at its first `#` or `//`, except for a canonical
// header line, which is kept whole. If the very first raw line is a canonical
// header, ErrAlreadyCanonical is returned.
func Lines(text string) ([]string, error) {
	raw := splitRaw(text)
	if len(raw) > 0 && instance.IsHeader(raw[0]) {
		return nil, ErrAlreadyCanonical
	}

	out := make([]string, 0, len(raw))
	for _, ln := range raw {
		s := strings.TrimSpace(ln)
		if s == "" {
			continue
		}
		if instance.IsHeader(s) {
			out = append(out, s)
			continue
		}
		if i := strings.Index(s, "#"); i >= 0 {
			s = strings.TrimSpace(s[:i])
		}
		if i := strings.Index(s, "//"); i >= 0 {
			s = strings.TrimSpace(s[:i])
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

// splitRaw breaks text on any line terminator. Invalid UTF-8 is dropped and a
// leading byte order mark is ignored.
func splitRaw(text string) []string {
	text = strings.ToValidUTF8(text, "")
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
