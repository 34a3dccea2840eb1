package tableau

import "fmt"

// StackIndex identifies one of the seven working stacks
type StackIndex int

const (
	First StackIndex = iota
	Second
	Third
	Fourth
	Fifth
	Sixth
	Seventh
)

// NumStacks is the number of working stacks in the tableau
const NumStacks = 7

var stackNames = [NumStacks]string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh"}

// StackIndices lists the working stacks from left to right
func StackIndices() []StackIndex {
	return []StackIndex{First, Second, Third, Fourth, Fifth, Sixth, Seventh}
}

// Valid reports whether i names one of the seven stacks
func (i StackIndex) Valid() bool {
	return i >= First && i <= Seventh
}

func (i StackIndex) String() string {
	if !i.Valid() {
		return fmt.Sprintf("StackIndex(%d)", int(i))
	}
	return stackNames[i]
}

// StackIndexFromNumber converts a 1-based column number to a StackIndex
func StackIndexFromNumber(n int) (StackIndex, error) {
	i := StackIndex(n - 1)
	if !i.Valid() {
		return 0, fmt.Errorf("invalid stack number %d: must be between 1 and %d", n, NumStacks)
	}
	return i, nil
}
