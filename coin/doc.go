package coin

/*

# Coins, spends and conditions

A coin is committed to by

	sha256( parent_coin_id[32] || puzzle_hash[32] || signed_bytes(amount) )

where signed_bytes is the canonical CLVM integer atom encoding. An amount of
zero contributes no bytes and amounts with the top bit set gain a leading
zero byte.

Spends carry their puzzle reveal and solution as serialized programs. This
package parses the conditions a puzzle outputs but does not evaluate
puzzles: callers supply evaluation through `ConditionsFunc`.

## Streamable layout

	coin:       parent_coin_info[32] || puzzle_hash[32] || amount_be8
	coin spend: coin || puzzle_reveal || solution

The programs are self delimiting, so no lengths are written.

*/
