package booking

import (
	"crypto/rand"
	"math/big"

	"staybook/internal/pkg/clock"
)

// ambiguous characters (0/O, 1/I) are left out
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

type CodeGenerator interface {
	Generate(kind Kind) (string, error)
}

type Services struct {
	Clock clock.Clock
	Codes CodeGenerator
}

func NewServices(clk clock.Clock, codes CodeGenerator) *Services {
	return &Services{Clock: clk, Codes: codes}
}

// RandomCodes issues RSV-XXXXXXXX and INQ-XXXXXXXX codes.
type RandomCodes struct{}

func (RandomCodes) Generate(kind Kind) (string, error) {
	prefix := "RSV-"
	if kind == KindInquiry {
		prefix = "INQ-"
	}
	buf := make([]byte, codeLength)
	limit := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return prefix + string(buf), nil
}
