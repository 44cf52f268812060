package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistersDefaultZero(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}
	for reg := Register('a'); reg <= 'z'; reg++ {
		assert.Equal(int64(0), regs.Get(reg), reg.String())
	}
}

func TestRegistersSet(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}
	regs.Set('a', 5)
	regs.Set('z', -9)

	assert.Equal(int64(5), regs.Get('a'))
	assert.Equal(int64(-9), regs.Get('z'))
	assert.Equal(int64(0), regs.Get('m'))

	seen := map[Register]int64{}
	for reg, value := range regs.All() {
		seen[reg] = value
	}
	assert.Equal(map[Register]int64{'a': 5, 'z': -9}, seen)

	regs.Reset()
	assert.Equal(int64(0), regs.Get('a'))
	assert.Equal(int64(0), regs.Get('z'))
}

func TestRegistersInvalid(t *testing.T) {
	assert := assert.New(t)

	regs := &Registers{}
	assert.Panics(func() { regs.Get('A') })
	assert.Panics(func() { regs.Set('{', 1) })
	assert.False(Register(0).Valid())
	assert.True(Register('q').Valid())
}
