package selfcheck

import "fmt"

// Kind selects the group-law formula a Case exercises.
type Kind int

const (
	Addition Kind = iota
	Doubling
)

func (k Kind) String() string {
	if k == Doubling {
		return "double"
	}
	return "add"
}

// Case checks Left·G + Right·G == Want·G (Addition) or 2·(Left·G) == Want·G
// (Doubling) against a Table.
type Case struct {
	Kind  Kind
	Left  int
	Right int
	Want  int
}

func (c Case) String() string {
	if c.Kind == Doubling {
		return fmt.Sprintf("%dG = 2*%dG", c.Want, c.Left)
	}
	return fmt.Sprintf("%dG = %dG + %dG", c.Want, c.Left, c.Right)
}

func add(l, r int) Case { return Case{Kind: Addition, Left: l, Right: r, Want: l + r} }
func dbl(l int) Case    { return Case{Kind: Doubling, Left: l, Want: 2 * l} }

var baseCases = []Case{
	add(1, 2), add(1, 3), add(1, 4), add(2, 4), add(1, 6),
	add(7, 1), add(5, 4), add(7, 3), add(8, 3), add(9, 3),
	dbl(2), dbl(3), dbl(4), dbl(5), dbl(6),
}

// Cases returns the checks that fit a table of n multiples: the fixed
// secp256k1 set for 2G..12G, then (k-1)G + G and, for even k, 2·(k/2)G for
// every k above 12.
func Cases(n int) []Case {
	var out []Case
	for _, c := range baseCases {
		if c.Want <= n {
			out = append(out, c)
		}
	}
	for k := 13; k <= n; k++ {
		out = append(out, add(k-1, 1))
		if k%2 == 0 {
			out = append(out, dbl(k/2))
		}
	}
	return out
}
