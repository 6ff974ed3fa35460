// Package input reads an array length and its elements from a whitespace
// separated token stream, prompting along the way.
package input

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"

	apperrors "firstelem/internal/errors"
	"firstelem/internal/sequence"
)

// Default prompts, as shown by the interactive program.
const (
	DefaultLengthPrompt   = "Ingrese el tamaño del array: "
	DefaultElementsPrompt = "Ingrese los elementos del array:"
)

// Options configures a Reader.
type Options struct {
	// Prompt receives the prompts. Nil disables prompting.
	Prompt io.Writer
	// LengthPrompt is written before the length, without a trailing newline.
	LengthPrompt string
	// ElementsPrompt is written on its own line before the elements.
	ElementsPrompt string
	// MaxLength caps the accepted length. Zero means no cap.
	MaxLength int
}

// Reader pulls integers one token at a time.
type Reader struct {
	scanner *bufio.Scanner
	opts    Options
	tokens  int
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader, opts Options) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	if opts.Prompt == nil {
		opts.Prompt = io.Discard
	}
	return &Reader{scanner: scanner, opts: opts}
}

// ReadArray prompts for and reads the length, then reads that many elements.
func (r *Reader) ReadArray() (sequence.Ints, error) {
	n, err := r.ReadLength()
	if err != nil {
		return nil, err
	}
	return r.ReadElements(n)
}

// ReadLength prompts for and reads the array length.
// A negative length, one above MaxLength, or one that overflows int64 is an
// INVALID_LENGTH error.
func (r *Reader) ReadLength() (int, error) {
	_, _ = fmt.Fprint(r.opts.Prompt, r.opts.LengthPrompt)

	tok, err := r.next("array length")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if stderrors.Is(err, strconv.ErrRange) {
		return 0, apperrors.New(apperrors.InvalidLength,
			fmt.Sprintf("array length %s is out of range", tok), err).
			WithDetails(map[string]interface{}{"token": tok, "position": r.tokens})
	}
	if err != nil {
		return 0, apperrors.New(apperrors.MalformedInput,
			fmt.Sprintf("array length %q is not an integer", tok), err).
			WithDetails(map[string]interface{}{"token": tok, "position": r.tokens})
	}
	if n < 0 {
		return 0, apperrors.Newf(apperrors.InvalidLength, "array length %d is negative", n).
			WithDetails(map[string]interface{}{"length": n})
	}
	if r.opts.MaxLength > 0 && n > int64(r.opts.MaxLength) {
		return 0, apperrors.Newf(apperrors.InvalidLength, "array length %d exceeds maximum %d", n, r.opts.MaxLength).
			WithDetails(map[string]interface{}{"length": n, "maxLength": r.opts.MaxLength})
	}
	return int(n), nil
}

// ReadElements prompts for and reads exactly n integers into a new sequence.
func (r *Reader) ReadElements(n int) (sequence.Ints, error) {
	_, _ = fmt.Fprintln(r.opts.Prompt, r.opts.ElementsPrompt)

	values := sequence.NewInts(n)
	for i := 0; i < n; i++ {
		what := fmt.Sprintf("element %d of %d", i+1, n)
		tok, err := r.next(what)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, apperrors.New(apperrors.MalformedInput,
				fmt.Sprintf("%s %q is not an integer", what, tok), err).
				WithDetails(map[string]interface{}{"token": tok, "position": r.tokens, "index": i})
		}
		values[i] = v
	}
	return values, nil
}

// Tokens returns how many tokens have been consumed.
func (r *Reader) Tokens() int { return r.tokens }

func (r *Reader) next(what string) (string, error) {
	if r.scanner.Scan() {
		r.tokens++
		return r.scanner.Text(), nil
	}
	err := r.scanner.Err()
	switch {
	case err == nil:
		return "", apperrors.New(apperrors.MalformedInput,
			fmt.Sprintf("input ended before %s", what), io.ErrUnexpectedEOF)
	case stderrors.Is(err, bufio.ErrTooLong):
		return "", apperrors.New(apperrors.MalformedInput,
			fmt.Sprintf("token for %s is too long", what), err)
	default:
		return "", apperrors.New(apperrors.InternalError,
			fmt.Sprintf("failed to read %s", what), err)
	}
}
