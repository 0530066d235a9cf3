package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"

	"github.com/smallyu/go-ecarith/internal/config"
	"github.com/smallyu/go-ecarith/internal/crypto/curves"
)

// parsePoint accepts "x,y" (decimal or 0x-hex coordinates), "inf", or on
// secp256k1 a SEC1 compressed/uncompressed public key in hex.
func parsePoint(c *curves.Curve, s string) (curves.Point, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "inf", "infinity":
		return curves.Infinity(), nil
	case "g":
		if !c.Params().HasGenerator() {
			return curves.Point{}, errors.Errorf("curve %s has no generator", c.Params().Name())
		}
		return c.Generator(), nil
	}

	if x, y, ok := strings.Cut(s, ","); ok {
		px, err := config.ParseInt(x)
		if err != nil {
			return curves.Point{}, errors.WithMessage(err, "x")
		}
		py, err := config.ParseInt(y)
		if err != nil {
			return curves.Point{}, errors.WithMessage(err, "y")
		}
		return curves.NewPoint(px, py), nil
	}

	if c.Params().Name() != curves.NameSecp256k1 {
		return curves.Point{}, errors.Errorf("invalid point %q: want x,y", s)
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return curves.Point{}, errors.Wrapf(err, "invalid point %q", s)
	}
	pub, err := btcec.ParsePubKey(raw)
	if err != nil {
		return curves.Point{}, errors.Wrap(err, "parsing SEC1 point")
	}
	return curves.NewPoint(pub.X(), pub.Y()), nil
}

func printPoint(w io.Writer, pt curves.Point) {
	if pt.IsInfinity() {
		fmt.Fprintln(w, "infinity")
		return
	}
	x, y := pt.Coordinates()
	fmt.Fprintf(w, "%s,%s\n", x, y)
}
