package textbuf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	sniffSampleSize          = 4096
	nonPrintableThresholdPct = 30
)

type byteEncoding int

const (
	encodingPlain byteEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// Load reads path into a buffer, decoding UTF-8 and BOM-marked UTF-16
// content and normalizing line endings. Binary files are rejected.
func Load(id ID, path string) (*Buffer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, ok := decodeContent(content)
	if !ok {
		return nil, fmt.Errorf("%s: not a text file", filepath.Base(path))
	}
	return New(id, filepath.Base(path), KindOf(path), SplitLines(text)), nil
}

// SplitLines splits text into lines, accepting LF, CRLF, and CR endings.
// A trailing newline does not produce an empty final line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func decodeContent(content []byte) (string, bool) {
	if len(content) == 0 {
		return "", true
	}

	switch detectEncoding(content) {
	case encodingUTF8BOM:
		content = content[3:]
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	}

	if looksBinary(content) {
		return "", false
	}
	return string(content), true
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, bool) {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func detectEncoding(sample []byte) byteEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingPlain
}

func looksBinary(content []byte) bool {
	sample := content
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return true
	}
	if utf8.Valid(sample) {
		return false
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) >= nonPrintableThresholdPct
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}
