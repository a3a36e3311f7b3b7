// Package qbf - plain-text instance parser.
//
// The classic SC-QBF interchange format is a whitespace-delimited token
// stream; line breaks carry no meaning. For an instance of size n:
//
//	n
//	|S₁| |S₂| … |Sₙ|           n set sizes
//	members of S₁               |S₁| tokens, 1-based
//	…
//	members of Sₙ               |Sₙ| tokens, 1-based
//	A[1][1] … A[1][n]           upper-triangular rows:
//	A[2][2] … A[2][n]           row i carries n−i+1 entries
//	…
//	A[n][n]
//
// Members are 1-based on disk and converted to 0-based internally.
//
// Design:
//   - One forward pass over a bufio token scanner; no full-file buffering.
//   - Sentinels from types.go; ErrBadToken is wrapped with the offending
//     token and its ordinal so callers can locate the defect, while
//     errors.Is(err, ErrBadToken) still matches.
//   - Shape/value validation is delegated to NewInstance; the parser only
//     enforces the token grammar.
//
// Complexity: O(total tokens) time, O(n²) space for the triangular rows.
package qbf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// tokens is a thin cursor over a whitespace-delimited stream, counting
// consumed tokens for error context.
type tokens struct {
	sc  *bufio.Scanner
	pos int // ordinal of the last consumed token (1-based)
}

// next returns the next raw token or ErrTruncatedInput at end of stream.
func (t *tokens) next() (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("qbf: read: %w", err)
		}

		return "", ErrTruncatedInput
	}
	t.pos++

	return t.sc.Text(), nil
}

// nextInt parses the next token as a base-10 integer.
func (t *tokens) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.Atoi(tok)
	if convErr != nil {
		return 0, fmt.Errorf("token #%d %q: %w", t.pos, tok, ErrBadToken)
	}

	return v, nil
}

// nextFloat parses the next token as a float64.
func (t *tokens) nextFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.ParseFloat(tok, 64)
	if convErr != nil {
		return 0, fmt.Errorf("token #%d %q: %w", t.pos, tok, ErrBadToken)
	}

	return v, nil
}

// ParseInstance reads one instance in the interchange format from r.
//
// Errors: ErrTruncatedInput, ErrBadToken (wrapped with position), plus the
// NewInstance sentinels for shape/value violations.
//
// Complexity: O(total tokens).
func ParseInstance(r io.Reader) (*Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	tk := &tokens{sc: sc}

	// Stage 1: size.
	n, err := tk.nextInt()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}

	// Stage 2: the n set sizes.
	var (
		sizes = make([]int, n)
		i     int // set / row index
		j     int // token index within the current run
		v     int // parsed integer token
	)
	for i = 0; i < n; i++ {
		if v, err = tk.nextInt(); err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, ErrShapeMismatch
		}
		sizes[i] = v
	}

	// Stage 3: the coverage sets, 1-based on disk.
	sets := make([][]int, n)
	for i = 0; i < n; i++ {
		sets[i] = make([]int, sizes[i])
		for j = 0; j < sizes[i]; j++ {
			if v, err = tk.nextInt(); err != nil {
				return nil, err
			}
			// Range is validated by NewInstance after the 0-base shift.
			sets[i][j] = v - 1
		}
	}

	// Stage 4: the upper-triangular objective rows.
	var (
		tri = make([][]float64, n)
		x   float64
	)
	for i = 0; i < n; i++ {
		tri[i] = make([]float64, n-i)
		for j = 0; j < n-i; j++ {
			if x, err = tk.nextFloat(); err != nil {
				return nil, err
			}
			tri[i][j] = x
		}
	}

	return NewInstance(sets, tri)
}

// ReadInstanceFile opens path and parses it via ParseInstance.
func ReadInstanceFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("qbf: open instance: %w", err)
	}
	defer f.Close()

	return ParseInstance(f)
}
