package shapes

import (
	"encoding/gob"
	"encoding/json"

	"github.com/gomlx/lazytensors/dtypes"
	"github.com/pkg/errors"
)

// GobSerialize shape in binary format.
func (s Shape) GobSerialize(encoder *gob.Encoder) (err error) {
	enc := func(e any) {
		if err != nil {
			return
		}
		err = encoder.Encode(e)
		if err != nil {
			err = errors.Wrapf(err, "failed to serialize Shape %s", s)
		}
	}
	enc(s.DType)
	enc(s.Dimensions)
	return
}

// GobDeserialize a Shape. Returns new Shape or an error.
func GobDeserialize(decoder *gob.Decoder) (s Shape, err error) {
	dec := func(data any) {
		if err != nil {
			return
		}
		err = decoder.Decode(data)
		if err != nil {
			err = errors.Wrapf(err, "failed to deserialize Shape")
		}
	}
	dec(&s.DType)
	dec(&s.Dimensions)
	return
}

// shapeJSON is the wire representation used by MarshalJSON and UnmarshalJSON.
// The dtype is serialized by name, so the JSON remains readable and stable
// even if the enum values are reordered.
type shapeJSON struct {
	DType      string `json:"dtype"`
	Dimensions []int  `json:"dimensions"`
}

// MarshalJSON implements json.Marshaler.
// Nil Dimensions are serialized as an empty array "[]" (and not as "null"),
// so scalar shapes always round-trip to the same representation.
func (s Shape) MarshalJSON() ([]byte, error) {
	aux := shapeJSON{DType: s.DType.String(), Dimensions: s.Dimensions}
	if aux.Dimensions == nil {
		aux.Dimensions = []int{}
	}
	return json.Marshal(aux)
}

// UnmarshalJSON implements json.Unmarshaler, reading the format written by MarshalJSON.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var aux shapeJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return errors.Wrapf(err, "failed to unmarshal Shape from JSON")
	}
	dtype, found := dtypes.MapOfNames[aux.DType]
	if !found {
		return errors.Errorf("failed to unmarshal Shape from JSON: unknown dtype %q", aux.DType)
	}
	s.DType = dtype
	s.Dimensions = aux.Dimensions
	return nil
}
