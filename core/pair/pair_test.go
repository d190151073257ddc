package pair_test

import (
	"testing"

	"common-utils/core/pair"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	p := pair.New("size", int64(1234))
	assert.Equal(t, "size", p.First)
	assert.Equal(t, int64(1234), p.Second)

	a, b := p.Unpack()
	assert.Equal(t, "size", a)
	assert.Equal(t, int64(1234), b)
}

func TestPair_Mutable(t *testing.T) {
	p := pair.New([]byte("a"), 1)
	p.First = append(p.First, 'b')
	p.Second++
	assert.Equal(t, []byte("ab"), p.First)
	assert.Equal(t, 2, p.Second)
}

func TestPair_Swap(t *testing.T) {
	p := pair.New(1, "one").Swap()
	assert.Equal(t, "one", p.First)
	assert.Equal(t, 1, p.Second)
}

func TestPair_String(t *testing.T) {
	assert.Equal(t, "(a, 1)", pair.New("a", 1).String())
}
