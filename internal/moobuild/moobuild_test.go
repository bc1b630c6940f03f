package moobuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		major, minor uint8
		count        uint32
		cpu          string
		data         []byte
	}){
		{1, 0, 1, "8088", []byte{
			'M', 'O', 'O', ' ', 12, 0, 0, 0,
			1, 0, 0, 0, 1, 0, 0, 0, '8', '0', '8', '8',
		}},
		{1, 1, 0x01020304, "V30 ", []byte{
			'M', 'O', 'O', ' ', 12, 0, 0, 0,
			1, 1, 0, 0, 4, 3, 2, 1, 'V', '3', '0', ' ',
		}},
		{1, 1, 2, "386Eextra", []byte{
			'M', 'O', 'O', ' ', 12, 0, 0, 0,
			1, 1, 0, 0, 2, 0, 0, 0, '3', '8', '6', 'E',
		}},
	}

	for _, entry := range table {
		b := &Builder{}
		b.Header(entry.major, entry.minor, entry.count, entry.cpu)
		assert.Equal(entry.data, b.Bytes(), entry.cpu)
	}
}

func TestChunk(t *testing.T) {
	assert := assert.New(t)

	b := &Builder{}
	b.Chunk("TEST", func(b *Builder) {
		b.U32(7)
		b.Chunk("BYTS", func(b *Builder) { b.Sized([]byte{0x90}) })
	})
	assert.Equal([]byte{
		'T', 'E', 'S', 'T', 17, 0, 0, 0,
		7, 0, 0, 0,
		'B', 'Y', 'T', 'S', 5, 0, 0, 0,
		1, 0, 0, 0, 0x90,
	}, b.Bytes())
}
