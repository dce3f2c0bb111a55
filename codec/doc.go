package codec

/*

# Byte level primitives for CLVM atoms

This package holds the leaf level helpers every other package in the module
builds on:

- hex conversion at the text boundary (`FromHex`, `FromHexRaw`, `ToHex`)
- canonical signed integer atoms (`IntToSignedBytes`, `SignedBytesToInt`)
- the fixed 32 byte `Hash` and the `SHA256` digest
- canonical byte string ordering (`CompareBytes`)

Everything here is a pure function over immutable inputs and is safe to call
from any goroutine.

## Signed integer atoms

Integers live in atoms as minimal length two's complement big endian bytes.
Zero is the empty atom. A leading 0x00 is only present when the following byte
has its high bit set (otherwise the value would read as negative), and a
leading 0xff is only present when the following byte has its high bit clear.

	 0    -> []
	 1    -> [0x01]
	 127  -> [0x7f]
	 128  -> [0x00 0x80]
	-1    -> [0xff]
	-128  -> [0x80]
	-129  -> [0xff 0x7f]

*/
