package words

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExactMatch 判断 pattern 是否作为完整词出现在 text 中：
// 命中位置的两侧必须是词边界（字符串首尾、空白、连字符、下划线或括号）。
// 用于防止较短的识别词命中无关长词的内部片段，
// 比如 "II" 不应命中 "TITLEII2"。
func ExactMatch(text, pattern string) bool {
	if pattern == "" {
		return false
	}
	if text == pattern {
		return true
	}

	for start := 0; start <= len(text)-len(pattern); {
		idx := strings.Index(text[start:], pattern)
		if idx < 0 {
			return false
		}
		idx += start
		if boundaryBefore(text, idx) && boundaryAfter(text, idx+len(pattern)) {
			return true
		}
		start = idx + 1
	}
	return false
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:idx])
	return isBoundary(r)
}

func boundaryAfter(text string, idx int) bool {
	if idx == len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[idx:])
	return isBoundary(r)
}

func isBoundary(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '-', '_', '[', ']', '(', ')', '（', '）', '【', '】':
		return true
	}
	return false
}
