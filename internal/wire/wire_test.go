package wire

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	universal "github.com/Lemurian-Labs/lemurian-universal"
)

func TestBinary(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		nbits int
		bits  uint64
		data  []byte
	}{
		{4, 0xa, []byte{0x0a}},
		{8, 0xff, []byte{0xff}},
		{9, 0x1fe, []byte{0xfe, 0x01}},
		{16, 0x8001, []byte{0x01, 0x80}},
		{64, 0x0102030405060708, []byte{8, 7, 6, 5, 4, 3, 2, 1}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(len(test.data), Size(test.nbits))
			a.Equal(test.data, Append(nil, test.nbits, test.bits))
			bits, err := Read(test.nbits, test.data)
			a.NoError(err)
			a.Equal(test.bits, bits)
		})
	}
	a.Equal([]byte{0xaa, 0x01}, Append([]byte{0xaa}, 3, 1))
	_, err := Read(8, []byte{1, 2})
	a.Error(err)
	_, err = Read(4, []byte{0x10})
	a.ErrorIs(err, universal.ErrRange)
}

func TestJSON(t *testing.T) {
	a := assert.New(t)
	a.Equal([]byte(`"1.25"`), Quote("1.25"))
	tests := []struct {
		data string
		s    string
		err  bool
	}{
		{`"1.25"`, "1.25", false},
		{`-3`, "-3", false},
		{`""`, "", false},
		{`"\u0031.5"`, "1.5", false},
		{`"N\u0061R"`, "NaR", false},
		{`"`, "", true},
		{`"1.5`, "", true},
		{``, "", true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			s, err := Unquote([]byte(test.data))
			if test.err {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.Equal(test.s, s)
		})
	}
	a.Equal("0.1", FormatFloat(0.1))
	a.Equal("1e+21", FormatFloat(1e21))
}
