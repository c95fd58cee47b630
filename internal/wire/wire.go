// Package wire holds the byte and text forms shared by all number formats.
//
// The binary form of an nbits pattern is ceil(nbits/8) bytes, little endian.
// The JSON form is a quoted decimal string.
package wire

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"

	universal "github.com/Lemurian-Labs/lemurian-universal"
	"github.com/Lemurian-Labs/lemurian-universal/internal/mathutil"
)

// Size returns the number of bytes in the binary form of an nbits pattern.
func Size(nbits int) int {
	return (nbits + 7) / 8
}

// Append appends the binary form of bits to dst.
func Append(dst []byte, nbits int, bits uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits)
	return append(dst, buf[:Size(nbits)]...)
}

// Read parses the binary form of an nbits pattern.
func Read(nbits int, data []byte) (uint64, error) {
	if len(data) != Size(nbits) {
		return 0, fmt.Errorf("bad binary length %d, want %d", len(data), Size(nbits))
	}
	var buf [8]byte
	copy(buf[:], data)
	bits := binary.LittleEndian.Uint64(buf[:])
	if bits&^mathutil.Mask(nbits) != 0 {
		return 0, universal.ErrRange
	}
	return bits, nil
}

// Quote returns s as a JSON string. s must not need escaping.
func Quote(s string) []byte {
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	return append(b, '"')
}

// Unquote returns the contents of a JSON string or the raw text of a JSON number.
func Unquote(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("bad json value %q", data)
	}
	if data[0] != '"' {
		return string(data), nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("bad json value %q: %w", data, err)
	}
	return s, nil
}

// FormatFloat returns the shortest decimal form of f.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
