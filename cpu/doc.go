// Package cpu implements the decoder, register file, and single-step
// processor for the duet instruction language.
//
// The processor has twenty-six signed 64-bit registers named 'a' through
// 'z', all reading as zero until written, and a signed instruction pointer
// (IP). An IP outside of the listing is not a fault: the processor simply
// reports that it has halted.
//
// Each line of a listing holds one instruction:
//
//	set r op    r = op
//	add r op    r = r + op
//	mul r op    r = r * op
//	mod r op    r = r % op
//	mulpow2 r op    r = r * 2^op
//	snd op      send op
//	rcv r       receive into r
//	jgz op op   if op1 > 0, IP += op2
//	noop
//
// An 'op' is a base 10 integer, or a single register letter.
//
// The assembler accepts full listings with comments, equates, and
// compile-time expressions, and decodes each line into an Instruction.
package cpu
