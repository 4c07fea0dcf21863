package commands

import (
	"fmt"

	"github.com/aussiebroadwan/inkpass/pkg/cryptox"
	"github.com/aussiebroadwan/inkpass/pkg/jwtx"
)

// GenKeyCmd creates token signing material for AUTH_SECRET_FILE or
// AUTH_SIGNING_KEY_FILE.
type GenKeyCmd struct {
	Algorithm string `help:"Token algorithm the key is for" enum:"HS256,EdDSA" default:"HS256"`
	Out       string `help:"Write the key to this file instead of stdout" type:"path"`
}

func (c *GenKeyCmd) Run(globals *Globals) error {
	var (
		key []byte
		err error
	)
	switch c.Algorithm {
	case jwtx.AlgEdDSA:
		key, err = cryptox.GenerateEd25519Key()
	default:
		var secret string
		secret, err = cryptox.GenerateToken(cryptox.TokenSize512)
		key = []byte(secret + "\n")
	}
	if err != nil {
		return err
	}

	if c.Out == "" {
		_, err = globals.out().Write(key)
		return err
	}

	if err := cryptox.WriteSecretFile(c.Out, key); err != nil {
		return err
	}
	globals.logger().Debug("signing key written", "algorithm", c.Algorithm, "path", c.Out)
	fmt.Fprintf(globals.out(), "wrote %s key to %s\n", c.Algorithm, c.Out)
	return nil
}
