package channel

import (
	"fmt"

	"github.com/bytesight/bytesight/errs"
	"github.com/bytesight/bytesight/format"
)

// Graph-mode opcodes delivered by the inbound control protocol. One integer
// selects a clock, mapping, packing or alpha mode.
const (
	OpClockBlock = 0
	OpClockSlide = 1

	OpMapWrap    = 10
	OpMapTuple   = 11
	OpMapHilbert = 12

	OpPackIntensity     = 20
	OpPackHistIntensity = 21
	OpPackTight         = 22
	OpPackTightNoAlpha  = 23

	OpAlphaFull    = 30
	OpAlphaPattern = 31
	OpAlphaEntropy = 32
)

// Command applies one graph-mode opcode. Unknown opcodes are rejected with
// ErrUnknownOpcode and mutate nothing.
func (ch *Channel) Command(opcode int) error {
	switch opcode {
	case OpClockBlock:
		return ch.SwitchClock(format.ClockBlock)
	case OpClockSlide:
		return ch.SwitchClock(format.ClockSlide)
	case OpMapWrap:
		return ch.SwitchMapping(format.MapWrap)
	case OpMapTuple:
		return ch.SwitchMapping(format.MapTuple)
	case OpMapHilbert:
		return ch.SwitchMapping(format.MapHilbert)
	case OpPackIntensity:
		return ch.SwitchPacking(format.PackIntensity)
	case OpPackHistIntensity:
		return ch.SwitchPacking(format.PackHistIntensity)
	case OpPackTight:
		return ch.SwitchPacking(format.PackTight)
	case OpPackTightNoAlpha:
		return ch.SwitchPacking(format.PackTightNoAlpha)
	case OpAlphaFull:
		return ch.SwitchAlpha(format.AlphaFull)
	case OpAlphaPattern:
		return ch.SwitchAlpha(format.AlphaPattern)
	case OpAlphaEntropy:
		return ch.SwitchAlpha(format.AlphaEntropy)
	default:
		return fmt.Errorf("%w: %d", errs.ErrUnknownOpcode, opcode)
	}
}
