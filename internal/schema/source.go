package schema

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadLines loads a dump file and splits it into lines. Undecodable bytes are
// dropped rather than reported.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump: %w", err)
	}
	defer f.Close()

	lines, err := DecodeLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump %s: %w", path, err)
	}
	return lines, nil
}

// DecodeLines decodes r as UTF-8, or UTF-16 when a BOM says so, and splits
// the text into lines.
func DecodeLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(transform.NewReader(r, newDecoder()))
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

func newDecoder() transform.Transformer {
	return transform.Chain(unicode.BOMOverride(transform.Nop), dropIllFormed{})
}

// dropIllFormed removes byte sequences that are not valid UTF-8. A literal
// U+FFFD in the input is valid and kept.
type dropIllFormed struct{ transform.NopResetter }

func (dropIllFormed) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		size := 1
		if src[nSrc] >= utf8.RuneSelf {
			r, n := utf8.DecodeRune(src[nSrc:])
			if r == utf8.RuneError && n == 1 {
				if !atEOF && !utf8.FullRune(src[nSrc:]) {
					return nDst, nSrc, transform.ErrShortSrc
				}
				nSrc++
				continue
			}
			size = n
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// SplitLines splits on \n, \r\n and \r.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
