package clvm

/*

# CLVM nodes, canonical serialization and tree hashing

CLVM programs are binary trees whose leaves are byte strings (atoms) and whose
interior nodes are pairs. This package keeps them in an `Arena`: an
append-only log of node records addressed by `NodeRef`. A pair may only
reference nodes appended before it. That one rule gives us:

1. no cycles, so every walk terminates
2. postorder allocation order, the same order the deserializer produces
3. wholesale lifetime management (`Reset`, `Checkpoint`/`Restore`) instead of
   per node ownership

The arena never deduplicates. Two refs holding identical trees are told apart
only by index and recognised as equal only by tree hash.

## Canonical serialization

	0x80            nil (the empty atom)
	0x00-0x7f       a one byte atom holding that byte
	0x81-0xfb ...   a length prefixed atom, see sizes.go
	0xff L R        a pair: the left node then the right node

The decoder treats its input as hostile. It never recurses, checks every
length against both the remaining input and the configured limits before
allocating, and rejects any prefix wider than the minimal one for its length.
A failed decode leaves the arena exactly as it was.

## Tree hash

	atom:  sha256( 0x01 || bytes )
	pair:  sha256( 0x02 || hash(left) || hash(right) )

`CurryTreeHash` composes these for the fixed curry template so the hash of a
curried puzzle can be derived from the module hash and argument hashes alone.

*/
