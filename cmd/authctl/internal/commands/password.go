package commands

import (
	"errors"
	"fmt"

	"github.com/aussiebroadwan/inkpass/pkg/cryptox"
	"golang.org/x/crypto/bcrypt"
)

const (
	algBcrypt   = "bcrypt"
	algArgon2id = "argon2id"
)

var ErrPasswordMismatch = errors.New("password does not match")

type HashPasswordCmd struct {
	Password   string `arg:"" optional:"" help:"Password to hash"`
	Generate   bool   `help:"Generate a random password and print it before the hash"`
	Algorithm  string `help:"Hash algorithm" enum:"bcrypt,argon2id" default:"bcrypt"`
	Cost       int    `help:"bcrypt cost" default:"10"`
	PepperFile string `help:"Pepper file for argon2id hashes" env:"AUTH_PEPPER_FILE" default:"pepper"`
}

func (c *HashPasswordCmd) Run(globals *Globals) error {
	password := c.Password
	if c.Generate {
		generated, err := cryptox.GeneratePassword()
		if err != nil {
			return err
		}
		password = generated
		fmt.Fprintf(globals.out(), "password: %s\n", password)
	}
	if password == "" {
		return errors.New("a password argument or --generate is required")
	}

	var (
		hash string
		err  error
	)
	switch c.Algorithm {
	case algArgon2id:
		cryptox.SetPepperPath(c.PepperFile)
		hash, err = cryptox.HashPassword(password)
	default:
		if c.Cost < bcrypt.MinCost || c.Cost > bcrypt.MaxCost {
			return fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
		}
		hash, err = cryptox.HashPasswordBcrypt(password, c.Cost)
	}
	if err != nil {
		return err
	}

	globals.logger().Debug("password hashed", "algorithm", c.Algorithm)
	fmt.Fprintln(globals.out(), hash)
	return nil
}

type VerifyPasswordCmd struct {
	Password   string `arg:"" help:"Plaintext password"`
	Hash       string `arg:"" help:"Stored hash"`
	PepperFile string `help:"Pepper file for argon2id hashes" env:"AUTH_PEPPER_FILE" default:"pepper"`
}

func (c *VerifyPasswordCmd) Run(globals *Globals) error {
	cryptox.SetPepperPath(c.PepperFile)

	if err := cryptox.VerifyPassword(c.Password, c.Hash); err != nil {
		globals.logger().Debug("password verification failed", "error", err)
		return ErrPasswordMismatch
	}

	fmt.Fprintln(globals.out(), "ok")
	return nil
}
