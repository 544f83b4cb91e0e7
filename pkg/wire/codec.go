package wire

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// ErrUnknownKind is returned when an envelope names no known document kind.
var ErrUnknownKind = errors.New("unknown document kind")

// mapStringAny decodes untyped maps, such as run metadata, with string keys.
var mapStringAny = reflect.TypeOf(map[string]any(nil))

// encMode is the CBOR encoder mode for documents.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for documents.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Lenient for forward compatibility.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
		DefaultMapType:    mapStringAny,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// NewEncoder creates a new CBOR encoder that writes to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder creates a new CBOR decoder that reads from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return decMode.NewDecoder(r)
}

// envelope is the on-wire wrapper of a document.
type envelope struct {
	Kind Kind            `cbor:"1,keyasint"`
	Doc  cbor.RawMessage `cbor:"2,keyasint"`
}

// EncodeDocument encodes a document together with its kind.
func EncodeDocument(kind Kind, doc any) ([]byte, error) {
	env, err := wrap(kind, doc)
	if err != nil {
		return nil, err
	}
	return Marshal(env)
}

// DecodeDocument decodes an envelope. The returned document is a
// *RunStart, *EventDescriptor, *Event or *RunStop according to kind.
func DecodeDocument(data []byte) (Kind, any, error) {
	var env envelope
	if err := Unmarshal(data, &env); err != nil {
		return 0, nil, fmt.Errorf("failed to decode envelope: %w", err)
	}
	doc, err := decodeBody(env)
	if err != nil {
		return 0, nil, err
	}
	return env.Kind, doc, nil
}

// DocumentEncoder writes a stream of enveloped documents.
type DocumentEncoder struct {
	enc *cbor.Encoder
}

// NewDocumentEncoder creates a document encoder writing to w.
func NewDocumentEncoder(w io.Writer) *DocumentEncoder {
	return &DocumentEncoder{enc: NewEncoder(w)}
}

// Encode writes one document.
func (e *DocumentEncoder) Encode(kind Kind, doc any) error {
	env, err := wrap(kind, doc)
	if err != nil {
		return err
	}
	return e.enc.Encode(env)
}

// DocumentDecoder reads a stream of enveloped documents.
type DocumentDecoder struct {
	dec *cbor.Decoder
}

// NewDocumentDecoder creates a document decoder reading from r.
func NewDocumentDecoder(r io.Reader) *DocumentDecoder {
	return &DocumentDecoder{dec: NewDecoder(r)}
}

// Decode reads the next document. It returns io.EOF at the end of the
// stream.
func (d *DocumentDecoder) Decode() (Kind, any, error) {
	var env envelope
	if err := d.dec.Decode(&env); err != nil {
		return 0, nil, err
	}
	doc, err := decodeBody(env)
	if err != nil {
		return 0, nil, err
	}
	return env.Kind, doc, nil
}

type validator interface {
	Validate() error
}

func wrap(kind Kind, doc any) (envelope, error) {
	if !kind.IsValid() {
		return envelope{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	if v, ok := doc.(validator); ok {
		if err := v.Validate(); err != nil {
			return envelope{}, fmt.Errorf("invalid %s document: %w", kind, err)
		}
	}
	body, err := Marshal(doc)
	if err != nil {
		return envelope{}, fmt.Errorf("failed to encode %s document: %w", kind, err)
	}
	return envelope{Kind: kind, Doc: body}, nil
}

func decodeBody(env envelope) (any, error) {
	var doc any
	switch env.Kind {
	case KindStart:
		doc = &RunStart{}
	case KindDescriptor:
		doc = &EventDescriptor{}
	case KindEvent:
		doc = &Event{}
	case KindStop:
		doc = &RunStop{}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, env.Kind)
	}
	if err := Unmarshal(env.Doc, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", env.Kind, err)
	}
	return doc, nil
}
