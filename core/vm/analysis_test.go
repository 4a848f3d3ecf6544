package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeStopOnly(t *testing.T) {
	a := Analyze(Cancun, []byte{byte(STOP)})
	require.Len(t, a.Instrs, 2) // BEGINBLOCK, STOP
	require.Empty(t, a.JumpdestOffsets)
	assert.Equal(t, uint32(GasZeroStep), a.Instrs[0].Arg.Block.GasCost)
}

func TestAnalyzeSimpleArithmetic(t *testing.T) {
	code := []byte{byte(PUSH1), 5, byte(PUSH1), 3, byte(ADD), byte(STOP)}
	a := Analyze(Cancun, code)

	// One block: BEGINBLOCK, PUSH1, PUSH1, ADD, STOP.
	require.Len(t, a.Instrs, 5)
	block := a.Instrs[0].Arg.Block
	assert.Equal(t, int16(0), block.StackReq)
	assert.Equal(t, int16(2), block.StackMaxGrowth)

	push1 := a.Instrs[1]
	assert.Equal(t, uint64(5), push1.Arg.SmallPushValue)
	push2 := a.Instrs[2]
	assert.Equal(t, uint64(3), push2.Arg.SmallPushValue)
}

func TestAnalyzeBadJumpTarget(t *testing.T) {
	code := []byte{byte(PUSH1), 0x99, byte(JUMP)}
	a := Analyze(Cancun, code)
	assert.Equal(t, int32(-1), a.FindJumpdest(0x99))
}

func TestAnalyzeJumpdestStopMergesOneBlock(t *testing.T) {
	code := []byte{byte(JUMPDEST), byte(STOP)}
	a := Analyze(Cancun, code)

	// A JUMPDEST that's the first instruction folds into the entry block
	// instead of opening a second one: just BEGINBLOCK, STOP.
	require.Len(t, a.Instrs, 2)
	require.Len(t, a.JumpdestOffsets, 1)
	assert.EqualValues(t, 0, a.JumpdestOffsets[0])
	idx := a.FindJumpdest(0)
	assert.EqualValues(t, 0, idx)
	assert.Equal(t, uint32(GasJumpdest+GasZeroStep), a.Instrs[idx].Arg.Block.GasCost)
}

func TestAnalyzeConsecutiveJumpdestsOpenSeparateBlocks(t *testing.T) {
	code := []byte{byte(JUMPDEST), byte(JUMPDEST), byte(STOP)}
	a := Analyze(Cancun, code)

	// The first JUMPDEST folds into the entry block; the second, landing on
	// a block that already has one folded in, opens a fresh block of its
	// own rather than folding into the same one again.
	require.Len(t, a.JumpdestOffsets, 2)
	assert.EqualValues(t, []int32{0, 1}, a.JumpdestOffsets)
	assert.EqualValues(t, []int32{0, 1}, a.JumpdestTargets)
	require.Len(t, a.Instrs, 3) // BEGINBLOCK, BEGINBLOCK, STOP
}

func TestAnalyzeJumpOverTerminatorToJumpdest(t *testing.T) {
	// PUSH1 4; JUMP; INVALID (dead, skipped by the jump); JUMPDEST; STOP
	code := []byte{
		byte(PUSH1), 4,
		byte(JUMP),
		byte(INVALID),
		byte(JUMPDEST),
		byte(STOP),
	}
	a := Analyze(Cancun, code)
	idx := a.FindJumpdest(4)
	require.GreaterOrEqual(t, idx, int32(0))
	// The block the jump lands on holds exactly one instruction (STOP)
	// after its BEGINBLOCK, and it's the very last block in the stream.
	assert.Equal(t, int(idx)+2, len(a.Instrs))
}

func TestAnalyzeTruncatedPush32(t *testing.T) {
	code := make([]byte, 1+10)
	code[0] = byte(PUSH32)
	for i := 1; i < len(code); i++ {
		code[i] = 0xff
	}
	a := Analyze(Cancun, code)

	require.Len(t, a.Instrs, 3) // BEGINBLOCK, PUSH32, implicit trailing STOP
	push := a.Instrs[1]
	assert.Len(t, push.Arg.PushValue, 10) // truncated at CodeEnd, not padded
	assert.Equal(t, len(code), a.CodeEnd)
}

func TestFindJumpdestBinarySearch(t *testing.T) {
	code := []byte{
		byte(JUMPDEST), byte(PUSH1), 0, byte(POP),
		byte(JUMPDEST), byte(PUSH1), 0, byte(POP),
		byte(JUMPDEST), byte(STOP),
	}
	a := Analyze(Cancun, code)
	require.Len(t, a.JumpdestOffsets, 3)
	assert.EqualValues(t, []int32{0, 4, 8}, a.JumpdestOffsets)
	assert.Equal(t, int32(-1), a.FindJumpdest(1))
	assert.Equal(t, int32(-1), a.FindJumpdest(-1))
	for _, off := range a.JumpdestOffsets {
		idx := a.FindJumpdest(int64(off))
		assert.GreaterOrEqual(t, idx, int32(0))
	}
}
