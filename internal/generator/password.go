// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// DefaultPasswordLength is used when the caller does not pass a length.
	DefaultPasswordLength = 12
	// MaxPasswordLength bounds a single generated password.
	MaxPasswordLength = 1024
)

// Character classes.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Special   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// DefaultPasswordOptions returns 12 characters drawn from all classes.
func DefaultPasswordOptions() models.PasswordOptions {
	return models.PasswordOptions{
		Length:     DefaultPasswordLength,
		UseUpper:   true,
		UseDigits:  true,
		UseSpecial: true,
	}
}

// Generator draws passwords and passphrases from a secure random source.
type Generator struct {
	random io.Reader
	words  func(n int) ([]string, error)
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{
		random: rand.Reader,
		words:  dicewareWords,
	}
}

// Password returns exactly opts.Length characters.
//
// Lowercase letters are always part of the pool. Every selected class
// contributes at least one character, unless Length is smaller than the
// number of selected classes; then only Length of the forced characters
// survive. The final order is a uniform shuffle.
func (g *Generator) Password(opts models.PasswordOptions) (string, error) {
	if opts.Length < 1 || opts.Length > MaxPasswordLength {
		return "", fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidLength, opts.Length, MaxPasswordLength)
	}

	pool := Lowercase
	var required []string
	if opts.UseUpper {
		pool += Uppercase
		required = append(required, Uppercase)
	}
	if opts.UseDigits {
		pool += Digits
		required = append(required, Digits)
	}
	if opts.UseSpecial {
		pool += Special
		required = append(required, Special)
	}

	password := make([]byte, 0, max(opts.Length, len(required)))
	for _, class := range required {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < opts.Length {
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := g.shuffle(password); err != nil {
		return "", err
	}

	return string(password[:opts.Length]), nil
}

func (g *Generator) pick(class string) (byte, error) {
	i, err := g.intn(len(class))
	if err != nil {
		return 0, err
	}
	return class[i], nil
}

// shuffle is a Fisher–Yates pass.
func (g *Generator) shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return int(v.Int64()), nil
}
