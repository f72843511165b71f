package jsonvalue

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json/jsontext"
)

// ErrInvalidJSON marks malformed input, as opposed to I/O failures.
var ErrInvalidJSON = errors.New("invalid JSON")

// SyntaxError wraps the decoder error for malformed input.
// errors.Is(err, ErrInvalidJSON) holds for it.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string { return "invalid JSON: " + e.Err.Error() }

func (e *SyntaxError) Unwrap() error { return e.Err }

func (e *SyntaxError) Is(target error) bool { return target == ErrInvalidJSON }

// Decode reads exactly one JSON value from r.
func Decode(r io.Reader) (*Value, error) {
	dec := jsontext.NewDecoder(r, jsontext.AllowDuplicateNames(true))

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, classify(err)
	}

	tok, err := dec.ReadToken()
	switch {
	case errors.Is(err, io.EOF):
		return v, nil
	case err != nil:
		return nil, classify(err)
	default:
		return nil, &SyntaxError{Err: fmt.Errorf("unexpected trailing %s after top-level value", tok.Kind())}
	}
}

// classify separates malformed input from read failures of the underlying reader.
func classify(err error) error {
	var syntactic *jsontext.SyntacticError
	if errors.As(err, &syntactic) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SyntaxError{Err: err}
	}
	return err
}

func DecodeBytes(data []byte) (*Value, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile opens, parses and closes the file before returning.
func DecodeFile(path string) (*Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

func decodeValue(dec *jsontext.Decoder) (*Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}

	switch tok.Kind() {
	case 'n':
		return Null(), nil
	case 't', 'f':
		return Bool(tok.Bool()), nil
	case '"':
		return String(tok.String()), nil
	case '0':
		return Number(tok.String()), nil
	case '[':
		arr := &Value{kind: KindArray}
		for dec.PeekKind() != ']' {
			item, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr.items = append(arr.items, item)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		obj := &Value{kind: KindObject}
		for dec.PeekKind() != '}' {
			name, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			// Token is only valid until the next decoder call.
			key := name.String()
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return obj, nil
	default:
		return nil, &SyntaxError{Err: fmt.Errorf("unexpected token %s", tok.Kind())}
	}
}
