// Package tactics implements the worm analyzer's external tactical
// reader collaborator: attack, find_defense, and does_defend from
// spec.md §6, backed by a bounded capturing-race search over the
// board's speculative move stack. spec.md §1 treats this reader as an
// external collaborator with a specified interface rather than
// something the analyzer itself redesigns; this package is that
// collaborator, built in the teacher's own search idiom (bounded
// negamax-style recursion with an undo stack and a transposition-style
// cache) rather than a full-strength Go engine.
package tactics

// Code is the four-valued attack/defense strength tag from spec.md §3,
// totally ordered 0 < KoB < KoA < Win. The ordering is encoded directly
// in the constant values so callers can compare with plain `<`/`>`.
type Code int

const (
	CodeNone Code = iota // no attack (or, for a defense result, no defense)
	KoB                  // attacker/defender has the weaker side of a ko
	KoA                  // attacker/defender has the stronger side of a ko
	Win                  // unconditional
)

// String renders the code the way spec.md names it.
func (c Code) String() string {
	switch c {
	case CodeNone:
		return "0"
	case KoB:
		return "KO_B"
	case KoA:
		return "KO_A"
	case Win:
		return "WIN"
	default:
		return "?"
	}
}

// MergeAttack folds a newly discovered defense result into an existing
// attack code using spec.md §4.4(b)'s asymmetric rule: a new finding
// only overrides when strictly stronger, except that ko findings are
// recorded at the weaker complementary code. Exported so internal/worm
// can apply the identical rule when folding pattern-matcher and
// liberty-probe findings (spec.md §4.4(b)/(e)) instead of re-deriving
// the merge table.
func MergeAttack(current Code, defenseFound Code) Code { return mergeAttack(current, defenseFound) }

func mergeAttack(current Code, defenseFound Code) Code {
	switch defenseFound {
	case CodeNone:
		return Win
	case KoA:
		if current == CodeNone || current == KoB {
			return KoB
		}
		return current
	case KoB:
		if current != Win {
			return KoA
		}
		return current
	default: // Win: fully defended, no attack finding
		return current
	}
}

// MergeDefense is MergeAttack's mirror, exported for the same reason.
func MergeDefense(current Code, attackFound Code) Code { return mergeDefense(current, attackFound) }

func mergeDefense(current Code, attackFound Code) Code {
	switch attackFound {
	case CodeNone:
		return Win
	case KoA:
		if current != Win {
			return KoB
		}
		return current
	case KoB:
		if current == CodeNone || current == KoA {
			return KoA
		}
		return current
	default:
		return current
	}
}
