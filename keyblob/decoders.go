package keyblob

import (
	"fmt"
	"math/big"
)

// Algorithm identifies a supported public key algorithm.
type Algorithm int

const (
	AlgUnknown Algorithm = iota
	AlgRSA
	AlgDSS
	AlgECDSA
	AlgEd25519
)

var algorithms = map[string]Algorithm{
	"ssh-rsa":             AlgRSA,
	"ssh-dss":             AlgDSS,
	"ecdsa-sha2-nistp256": AlgECDSA,
	"ecdsa-sha2-nistp384": AlgECDSA,
	"ecdsa-sha2-nistp521": AlgECDSA,
	"ssh-ed25519":         AlgEd25519,
}

// AlgorithmOf maps a key type identifier to its Algorithm.
func AlgorithmOf(keyType string) Algorithm {
	return algorithms[keyType]
}

func (a Algorithm) String() string {
	switch a {
	case AlgRSA:
		return "rsa"
	case AlgDSS:
		return "dss"
	case AlgECDSA:
		return "ecdsa"
	case AlgEd25519:
		return "ed25519"
	default:
		return "unknown"
	}
}

// TypeVersion is the SSHFP algorithm numeral.
func (a Algorithm) TypeVersion() string {
	switch a {
	case AlgRSA:
		return "1"
	case AlgDSS:
		return "2"
	case AlgECDSA:
		return "3"
	case AlgEd25519:
		return "4"
	default:
		return ""
	}
}

// keySize is what a type decoder extracts from the rest of the blob.
type keySize struct {
	bits     int
	exponent string
}

type decoderFunc func(c *cursor, trace func(field string, n int)) (keySize, error)

var decoders = map[Algorithm]decoderFunc{
	AlgRSA:     decodeRSA,
	AlgDSS:     decodeDSS,
	AlgECDSA:   decodeECDSA,
	AlgEd25519: decodeEd25519,
}

// byteBits is the (length-1)*8 size estimate used for everything but RSA.
func byteBits(field []byte) int {
	return (len(field) - 1) * 8
}

func decodeRSA(c *cursor, trace func(string, int)) (keySize, error) {
	e, err := c.readField()
	if err != nil {
		return keySize{}, fmt.Errorf("reading rsa exponent: %w", err)
	}
	trace("exponent", len(e))
	n, err := c.readField()
	if err != nil {
		return keySize{}, fmt.Errorf("reading rsa modulus: %w", err)
	}
	trace("modulus", len(n))
	return keySize{
		bits:     new(big.Int).SetBytes(n).BitLen(),
		exponent: new(big.Int).SetBytes(e).String(),
	}, nil
}

// decodeDSS reads only p; q, g and y are left unread.
func decodeDSS(c *cursor, trace func(string, int)) (keySize, error) {
	p, err := c.readField()
	if err != nil {
		return keySize{}, fmt.Errorf("reading dss p: %w", err)
	}
	trace("p", len(p))
	return keySize{bits: byteBits(p), exponent: NotApplicable}, nil
}

func decodeECDSA(c *cursor, trace func(string, int)) (keySize, error) {
	curve, err := c.readField()
	if err != nil {
		return keySize{}, fmt.Errorf("reading ecdsa curve: %w", err)
	}
	trace("curve", len(curve))
	point, err := c.readField()
	if err != nil {
		return keySize{}, fmt.Errorf("reading ecdsa point: %w", err)
	}
	trace("point", len(point))
	return keySize{bits: byteBits(point) / 2, exponent: NotApplicable}, nil
}

func decodeEd25519(c *cursor, trace func(string, int)) (keySize, error) {
	pub, err := c.readField()
	if err != nil {
		return keySize{}, fmt.Errorf("reading ed25519 key: %w", err)
	}
	trace("key", len(pub))
	return keySize{bits: byteBits(pub), exponent: NotApplicable}, nil
}
