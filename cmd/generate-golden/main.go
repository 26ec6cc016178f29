// Command generate-golden regenerates the golden file for the bigint package
// using math/big as the oracle. The file pins the results of the arithmetic
// operations across a mix of small, large, and sign-crossing operands.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"path/filepath"
)

// GoldenCase represents a single test case in the golden file.
// The b field is empty for unary operations.
type GoldenCase struct {
	Op     string `json:"op"`
	A      string `json:"a"`
	B      string `json:"b"`
	Result string `json:"result"`
}

func main() {
	outputDir := flag.String("out", "internal/bigint/testdata", "Output directory for the golden file")
	seed := flag.Int64("seed", 20250824, "Seed for the random operand generator")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "bigint_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	rng := rand.New(rand.NewSource(*seed))
	var data []GoldenCase

	fmt.Println("Generating golden data...")

	for _, pair := range operandPairs(rng) {
		a, b := pair[0], pair[1]
		data = append(data,
			GoldenCase{Op: "add", A: a.String(), B: b.String(), Result: new(big.Int).Add(a, b).String()},
			GoldenCase{Op: "sub", A: a.String(), B: b.String(), Result: new(big.Int).Sub(a, b).String()},
			GoldenCase{Op: "mul", A: a.String(), B: b.String(), Result: new(big.Int).Mul(a, b).String()},
		)
		if b.Sign() != 0 {
			// big.Int Quo/Rem implement truncating division, the same
			// convention used by the bigint package.
			data = append(data,
				GoldenCase{Op: "quo", A: a.String(), B: b.String(), Result: new(big.Int).Quo(a, b).String()},
				GoldenCase{Op: "rem", A: a.String(), B: b.String(), Result: new(big.Int).Rem(a, b).String()},
			)
		}
		data = append(data,
			GoldenCase{Op: "gcd", A: a.String(), B: b.String(), Result: new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b)).String()},
		)
		if a.Sign() >= 0 {
			data = append(data,
				GoldenCase{Op: "sqrt", A: a.String(), Result: new(big.Int).Sqrt(a).String()},
			)
		}
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated %d cases at %s\n", len(data), filename)
}

// operandPairs produces the operand pairs the golden file covers: fixed
// boundary cases plus random operands of increasing magnitude.
func operandPairs(rng *rand.Rand) [][2]*big.Int {
	fixed := [][2]string{
		{"0", "0"},
		{"0", "1"},
		{"1", "-1"},
		{"-1", "-1"},
		{"9", "1"},
		{"10", "3"},
		{"-10", "3"},
		{"10", "-3"},
		{"-10", "-3"},
		{"100", "10"},
		{"999999999999999999", "1"},
		{"12345678901234567890", "54321"},
		{"98765432109876543210", "12345"},
		{"9223372036854775807", "-9223372036854775808"},
	}

	var pairs [][2]*big.Int
	for _, f := range fixed {
		a, _ := new(big.Int).SetString(f[0], 10)
		b, _ := new(big.Int).SetString(f[1], 10)
		pairs = append(pairs, [2]*big.Int{a, b})
	}

	// Random operands: digit counts grow so carries, borrows, and multi-digit
	// quotient selection all get exercised.
	for _, digits := range []int{1, 2, 5, 10, 20, 40, 80} {
		for i := 0; i < 3; i++ {
			pairs = append(pairs, [2]*big.Int{randomInt(rng, digits), randomInt(rng, digits/2+1)})
		}
	}

	return pairs
}

// randomInt builds a random integer with the given number of decimal digits,
// negating roughly half of them.
func randomInt(rng *rand.Rand, digits int) *big.Int {
	if digits < 1 {
		digits = 1
	}
	buf := make([]byte, digits)
	for i := range buf {
		buf[i] = byte('0' + rng.Intn(10))
	}
	// Avoid a leading zero so the decimal rendering round-trips
	if buf[0] == '0' {
		buf[0] = byte('1' + rng.Intn(9))
	}
	n, _ := new(big.Int).SetString(string(buf), 10)
	if rng.Intn(2) == 0 {
		n.Neg(n)
	}
	return n
}
