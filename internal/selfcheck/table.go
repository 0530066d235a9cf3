package selfcheck

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
)

// Table holds the precomputed multiples G, 2G, ..., nG of a base point.
type Table struct {
	multiples []curves.Point
}

// NewTable builds a table from points[i] = (i+1)·G.
func NewTable(points []curves.Point) (*Table, error) {
	for i, pt := range points {
		if pt.IsInfinity() {
			return nil, fmt.Errorf("multiple %dG is the point at infinity", i+1)
		}
	}
	cp := make([]curves.Point, len(points))
	copy(cp, points)
	return &Table{multiples: cp}, nil
}

// Len returns n, the largest multiple in the table.
func (t *Table) Len() int {
	return len(t.multiples)
}

// Multiple returns k·G for 1 <= k <= Len.
func (t *Table) Multiple(k int) (curves.Point, bool) {
	if k < 1 || k > len(t.multiples) {
		return curves.Point{}, false
	}
	return t.multiples[k-1], true
}

// secp256k1Multiples are G through 12G as decimal coordinates.
var secp256k1Multiples = [][2]string{
	{"55066263022277343669578718895168534326250603453777594175500187360389116729240", "32670510020758816978083085130507043184471273380659243275938904335757337482424"},
	{"89565891926547004231252920425935692360644145829622209833684329913297188986597", "12158399299693830322967808612713398636155367887041628176798871954788371653930"},
	{"112711660439710606056748659173929673102114977341539408544630613555209775888121", "25583027980570883691656905877401976406448868254816295069919888960541586679410"},
	{"103388573995635080359749164254216598308788835304023601477803095234286494993683", "37057141145242123013015316630864329550140216928701153669873286428255828810018"},
	{"21505829891763648114329055987619236494102133314575206970830385799158076338148", "98003708678762621233683240503080860129026887322874138805529884920309963580118"},
	{"115780575977492633039504758427830329241728645270042306223540962614150928364886", "78735063515800386211891312544505775871260717697865196436804966483607426560663"},
	{"41948375291644419605210209193538855353224492619856392092318293986323063962044", "48361766907851246668144012348516735800090617714386977531302791340517493990618"},
	{"21262057306151627953595685090280431278183829487175876377991189246716355947009", "41749993296225487051377864631615517161996906063147759678534462689479575333124"},
	{"78173298682877769088723994436027545680738210601369041078747105985693655485630", "92362876758821804597230797234617159328445543067760556585160674174871431781431"},
	{"72488970228380509287422715226575535698893157273063074627791787432852706183111", "62070622898698443831883535403436258712770888294397026493185421712108624767191"},
	{"53957576663012291606402345341061437133522758407718089353314528343643821967563", "98386217607324929854432842186271083758341411730506808463586570492533445740059"},
	{"94111259592240215275188773285036844871058226277992966241101117022315524122714", "76870767327212528811304566602812752860184934880685532702451763239157141742375"},
}

// Secp256k1Table returns G through 12G on secp256k1.
func Secp256k1Table() *Table {
	pts := make([]curves.Point, len(secp256k1Multiples))
	for i, c := range secp256k1Multiples {
		x, _ := new(big.Int).SetString(c[0], 10)
		y, _ := new(big.Int).SetString(c[1], 10)
		pts[i] = curves.NewPoint(x, y)
	}
	return &Table{multiples: pts}
}

// ComputeTable derives G through nG with the curve's own group law.
func ComputeTable(c *curves.Curve, n int) (*Table, error) {
	g := c.Generator()
	if g.IsInfinity() {
		return nil, fmt.Errorf("curve %s has no generator", c.Params().Name())
	}
	pts := make([]curves.Point, 0, n)
	acc := curves.Infinity()
	for i := 0; i < n; i++ {
		acc = c.Add(acc, g)
		pts = append(pts, acc)
	}
	return NewTable(pts)
}
