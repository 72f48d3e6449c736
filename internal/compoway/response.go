// internal/compoway/response.go
package compoway

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Response layout constants for the K3HB monitor read.
// These values encode the device's register layout and MUST NOT be
// configurable.

// responseHeaderLen is the fixed width of the node / sub-address /
// end-code / MRC / SRC / response-code fields before the data section.
const responseHeaderLen = 13

// minBodyLen is the shortest frame body that still carries a data
// section after the header.
const minBodyLen = 16

// ValueBitWidth is the width of the monitor value on the wire.
const ValueBitWidth = 16

// ValueScale converts the raw integer into the displayed value; the
// K3HB reports one implied decimal place.
const ValueScale = 10

// Frame and decode failures, distinguishable with errors.Is.
// All of them are recoverable per poll cycle.
var (
	ErrMissingSTX    = errors.New("compoway: missing STX at frame start")
	ErrMissingETX    = errors.New("compoway: missing ETX in frame")
	ErrFrameTooShort = errors.New("compoway: frame too short for data section")
	ErrNotHex        = errors.New("compoway: data section is not hexadecimal")
)

// ValidateAndClean checks the frame delimiters and strips them.
// Anything after the first ETX (echoed BCC, line noise) is discarded.
// The returned body is the bytes between STX and ETX exclusive.
func ValidateAndClean(raw string) (string, error) {
	if raw == "" || raw[0] != STX {
		return "", ErrMissingSTX
	}
	etx := strings.IndexByte(raw, ETX)
	if etx < 0 {
		return "", ErrMissingETX
	}
	return raw[1:etx], nil
}

// ExtractDataSection returns the data section of a cleaned frame body:
// the remainder after the fixed-width header fields.
func ExtractDataSection(body string) (string, error) {
	if len(body) < minBodyLen {
		return "", ErrFrameTooShort
	}
	return body[responseHeaderLen:], nil
}

// DecodeSigned parses a hexadecimal data section as a two's-complement
// signed integer of bitWidth bits and scales it to the displayed value.
// The order is load-bearing: sign correction MUST happen before
// scaling, or negative readings come out wrong.
func DecodeSigned(data string, bitWidth uint, scale float64) (float64, error) {
	raw, err := strconv.ParseUint(data, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotHex, data)
	}

	value := int64(raw)
	if value >= 1<<(bitWidth-1) {
		value -= 1 << bitWidth
	}
	return float64(value) / scale, nil
}

// DecodeDisplay runs the full response pipeline on raw frame text:
// validate/clean, extract the data section, decode the signed value.
// It short-circuits on the first failure.
func DecodeDisplay(raw string) (float64, error) {
	body, err := ValidateAndClean(raw)
	if err != nil {
		return 0, err
	}
	data, err := ExtractDataSection(body)
	if err != nil {
		return 0, err
	}
	return DecodeSigned(data, ValueBitWidth, ValueScale)
}
