package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func isRTF(text string) bool {
	return strings.HasPrefix(text, "{\\rtf") || strings.Contains(text, "\\rtf1")
}

// stripRTF drops groups braces and control words, keeping escaped literals.
func stripRTF(text string) string {
	var result strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '{', '}':
			continue
		case '\\':
			if i+1 >= len(runes) {
				continue
			}
			next := runes[i+1]
			if next == '\\' || next == '{' || next == '}' {
				result.WriteRune(next)
				i++
				continue
			}
			for i+1 < len(runes) && isASCIILetterOrDigit(runes[i+1]) {
				i++
			}
			if i+1 < len(runes) && runes[i+1] == ' ' {
				i++
			}
			result.WriteRune(' ')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

func isASCIILetterOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}

// cleanPastedName turns clipboard content into a single-line name: RTF is
// stripped, whitespace runs collapse to one space, control runes go.
func cleanPastedName(text string) string {
	if isRTF(text) {
		text = stripRTF(text)
	}
	var result strings.Builder
	result.Grow(len(text))
	space := false
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t' || r == ' ':
			space = true
		case r < 32 || r == 127:
			continue
		default:
			if space && result.Len() > 0 {
				result.WriteByte(' ')
			}
			space = false
			result.WriteRune(r)
		}
	}
	return result.String()
}
