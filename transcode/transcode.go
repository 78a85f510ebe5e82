// Package transcode converts documents between lilliput and the common
// interchange formats: JSON, YAML and CBOR.
//
// Conversions go through plain Go values (lilliput.FromNative and
// lilliput.ToNative), so each format keeps its own conventions: JSON
// renders byte strings as base64 and rejects NaN and the infinities,
// CBOR keeps the full numeric range, YAML follows its scalar typing.
// Lilliput map keys that are not strings are rendered in diagnostic
// notation when the target format wants string keys.
package transcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	lilliput "github.com/lilliput-format/lilliput.go"
)

var (
	cborEnc = mustEncMode()
	cborDec = mustDecMode()
)

func mustEncMode() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[any]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// FromJSON converts one JSON document. Numbers without a fraction or
// exponent stay exact integers.
func FromJSON(data []byte) (lilliput.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("transcode: decode json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("transcode: trailing data after json document")
	}

	v, err := lilliput.FromNative(raw)
	if err != nil {
		return nil, fmt.Errorf("transcode: convert json: %w", err)
	}
	return v, nil
}

// ToJSON renders v as JSON. Values JSON cannot carry, such as NaN, fail.
func ToJSON(v lilliput.Value) ([]byte, error) {
	out, err := json.Marshal(lilliput.ToNative(v))
	if err != nil {
		return nil, fmt.Errorf("transcode: encode json: %w", err)
	}
	return out, nil
}

// FromYAML converts one YAML document.
func FromYAML(data []byte) (lilliput.Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("transcode: decode yaml: %w", err)
	}

	v, err := lilliput.FromNative(raw)
	if err != nil {
		return nil, fmt.Errorf("transcode: convert yaml: %w", err)
	}
	return v, nil
}

// ToYAML renders v as YAML.
func ToYAML(v lilliput.Value) ([]byte, error) {
	out, err := yaml.Marshal(lilliput.ToNative(v))
	if err != nil {
		return nil, fmt.Errorf("transcode: encode yaml: %w", err)
	}
	return out, nil
}

// FromCBOR converts one CBOR document. Tagged values are not supported;
// inputs using tags fail the native conversion.
func FromCBOR(data []byte) (lilliput.Value, error) {
	var raw any
	if err := cborDec.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("transcode: decode cbor: %w", err)
	}

	v, err := lilliput.FromNative(raw)
	if err != nil {
		return nil, fmt.Errorf("transcode: convert cbor: %w", err)
	}
	return v, nil
}

// ToCBOR renders v as deterministically encoded CBOR.
func ToCBOR(v lilliput.Value) ([]byte, error) {
	out, err := cborEnc.Marshal(lilliput.ToNative(v))
	if err != nil {
		return nil, fmt.Errorf("transcode: encode cbor: %w", err)
	}
	return out, nil
}
