package hw

import (
	"fmt"
	"io"
)

// cpuState stores the CPU state for the execution trace.
type cpuState struct {
	A, X, Y uint8
	P       P
	SP      uint8
	PC      Address

	Steps int64
}

type disasmer interface {
	Disasm(pc Address) DisasmOp
}

type tracer struct {
	d disasmer
	w io.Writer
}

// write the execution trace line for the instruction about to be executed.
func (t *tracer) write(state cpuState) {
	buf := t.d.Disasm(state.PC).Bytes()
	buf = fmt.Appendf(buf, "A:%02X X:%02X Y:%02X P:%02X S:%02X STEP:%d\n",
		state.A, state.X, state.Y, uint8(state.P), state.SP, state.Steps)
	t.w.Write(buf)
}
