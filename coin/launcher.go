package coin

import (
	"fmt"

	"github.com/freddiecoleman/chia-wallet-sdk/clvm"
	"github.com/freddiecoleman/chia-wallet-sdk/codec"
)

// Singleton puzzle constants.
var (
	SingletonLauncherPuzzleHash = mustHash("eff07522495060c066f66f32acc2a77e3a3e737aca8baea4d1a64ea4cdc13da9")
	SingletonTopLayerPuzzleHash = mustHash("7faa3253bfddd1e0decb0906b2dc6247bbc4cf608f58345d173adb63e8b47c9f")

	// SingletonLauncherPuzzle creates the eve singleton named in its solution
	// and announces the solution's tree hash.
	SingletonLauncherPuzzle = mustSerializedProgram("ff02ffff01ff04ffff04ff04ffff04ff05ffff04ff0bff80808080ffff04ffff04ff0affff04ffff02ff0effff04ff02ffff04ffff04ff05ffff04ff0bffff04ff17ff80808080ff80808080ff808080ff808080ffff04ffff01ff33ff3cff02ffff03ffff07ff0580ffff01ff0bffff0102ffff02ff0effff04ff02ffff04ff09ff80808080ffff02ff0effff04ff02ffff04ff0dff8080808080ffff01ff0bffff0101ff058080ff0180ff018080")
)

func mustHash(s string) codec.Hash {
	h, err := codec.HashFromHex(s)
	if err != nil {
		panic(err)
	}
	return h
}

func mustSerializedProgram(s string) clvm.SerializedProgram {
	var sp clvm.SerializedProgram
	if err := sp.UnmarshalText([]byte(s)); err != nil {
		panic(err)
	}
	return sp
}

// SingletonStructHash is the tree hash of
//
//	(top_layer_hash . (launcher_id . launcher_puzzle_hash))
//
// which every layer of a singleton carries to identify it.
func SingletonStructHash(launcherID codec.Hash) codec.Hash {
	return clvm.PairTreeHash(
		clvm.AtomTreeHash(SingletonTopLayerPuzzleHash[:]),
		clvm.PairTreeHash(
			clvm.AtomTreeHash(launcherID[:]),
			clvm.AtomTreeHash(SingletonLauncherPuzzleHash[:])))
}

// SingletonPuzzleHash is the puzzle hash of the singleton top layer curried
// with the singleton struct and the inner puzzle.
func SingletonPuzzleHash(launcherID, innerPuzzleHash codec.Hash) codec.Hash {
	return clvm.CurryTreeHash(SingletonTopLayerPuzzleHash,
		SingletonStructHash(launcherID),
		clvm.AtomTreeHash(innerPuzzleHash[:]))
}

// Launcher is a singleton launcher coin that has not been spent yet. Its id
// is known before the singleton is committed to, and becomes the singleton's
// identity.
type Launcher struct {
	coin            Coin
	conditions      []Condition
	singletonAmount uint64
}

func launcherCoin(parentCoinID codec.Hash, amount uint64) Coin {
	return NewCoin(parentCoinID, SingletonLauncherPuzzleHash, amount)
}

func createLauncher(amount uint64, hint *codec.Hash) CreateCoin {
	cc := CreateCoin{PuzzleHash: SingletonLauncherPuzzleHash, Amount: amount}
	if hint != nil {
		cc.Memos = [][]byte{hint.Bytes()}
	}
	return cc
}

// LauncherFromCoin wraps an existing launcher coin. conditions are what the
// parent spend must output alongside the launcher spend.
func LauncherFromCoin(c Coin, conditions []Condition) Launcher {
	return Launcher{coin: c, conditions: conditions, singletonAmount: c.Amount}
}

// NewLauncher returns the launcher the parent coin creates when it outputs
// Conditions().
func NewLauncher(parentCoinID codec.Hash, amount uint64) Launcher {
	return LauncherFromCoin(launcherCoin(parentCoinID, amount), []Condition{createLauncher(amount, nil)})
}

// NewHintedLauncher is NewLauncher with hint as the create coin memo so
// the launcher can be found by hint later.
func NewHintedLauncher(parentCoinID codec.Hash, amount uint64, hint codec.Hash) Launcher {
	return LauncherFromCoin(launcherCoin(parentCoinID, amount), []Condition{createLauncher(amount, &hint)})
}

// CreateLauncherEarly returns the condition that creates the launcher now
// and a Launcher that can be spent later alongside any other spend.
func CreateLauncherEarly(parentCoinID codec.Hash, amount uint64) (CreateCoin, Launcher) {
	return createLauncher(amount, nil), LauncherFromCoin(launcherCoin(parentCoinID, amount), nil)
}

func CreateHintedLauncherEarly(parentCoinID codec.Hash, amount uint64, hint codec.Hash) (CreateCoin, Launcher) {
	return createLauncher(amount, &hint), LauncherFromCoin(launcherCoin(parentCoinID, amount), nil)
}

// WithSingletonAmount sets the eve singleton amount when it differs from the
// launcher amount, for example a zero amount launcher creating a one mojo
// singleton.
func (l Launcher) WithSingletonAmount(amount uint64) Launcher {
	l.singletonAmount = amount
	return l
}

func (l Launcher) Coin() Coin { return l.coin }

// LauncherID is the launcher coin id.
func (l Launcher) LauncherID() codec.Hash { return l.coin.ID() }

// Conditions returns what the parent spend must output so far.
func (l Launcher) Conditions() []Condition {
	return append([]Condition(nil), l.conditions...)
}

// LauncherSpend is the result of spending a launcher.
type LauncherSpend struct {
	// Spend spends the launcher coin.
	Spend CoinSpend
	// ParentConditions must be output by the spend that pays for the
	// launcher. They include the assertion of the launcher's announcement,
	// which ties the two spends together.
	ParentConditions []Condition
	// Eve is the first singleton coin.
	Eve Coin
}

// Spend builds the launcher spend creating the eve singleton for
// innerPuzzleHash. keyValueList is the launcher metadata, traditionally a
// list of key value pairs; the zero Program stands for nil. The solution is
// allocated in a, which keyValueList must share.
func (l Launcher) Spend(a *clvm.Arena, innerPuzzleHash codec.Hash, keyValueList clvm.Program) (LauncherSpend, error) {
	launcherID := l.LauncherID()
	singletonPuzzleHash := SingletonPuzzleHash(launcherID, innerPuzzleHash)

	var err error
	if keyValueList == (clvm.Program{}) {
		if keyValueList, err = clvm.Nil(a); err != nil {
			return LauncherSpend{}, err
		}
	}
	ph, err := clvm.Atom(a, singletonPuzzleHash[:])
	if err != nil {
		return LauncherSpend{}, err
	}
	amount, err := clvm.Uint64(a, l.singletonAmount)
	if err != nil {
		return LauncherSpend{}, err
	}
	solution, err := clvm.List(a, ph, amount, keyValueList)
	if err != nil {
		return LauncherSpend{}, fmt.Errorf("launcher solution: %w", err)
	}
	serialized, err := clvm.SerializedProgramOf(solution)
	if err != nil {
		return LauncherSpend{}, err
	}
	solutionHash := solution.TreeHash()

	return LauncherSpend{
		Spend: NewCoinSpend(l.coin, SingletonLauncherPuzzle, serialized),
		ParentConditions: append(l.Conditions(), AssertCoinAnnouncement{
			AnnouncementID: AnnouncementID(launcherID, solutionHash[:]),
		}),
		Eve: NewCoin(launcherID, singletonPuzzleHash, l.singletonAmount),
	}, nil
}
