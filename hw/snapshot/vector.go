package snapshot

import (
	"fmt"

	"github.com/go-faster/jx"
)

// Vector is a single-instruction test case: the machine state before and
// after executing the instruction at Initial.PC.
type Vector struct {
	Name    string
	Initial State
	Final   State
}

// DecodeVectors decodes a JSON array of test vectors.
func DecodeVectors(buf []byte) ([]Vector, error) {
	var vecs []Vector
	err := jx.DecodeBytes(buf).Arr(func(d *jx.Decoder) error {
		var v Vector
		err := d.Obj(func(d *jx.Decoder, key string) error {
			switch key {
			case "name":
				name, err := d.Str()
				v.Name = name
				return err
			case "initial":
				return v.Initial.Decode(d)
			case "final":
				return v.Final.Decode(d)
			}
			return d.Skip()
		})
		if err != nil {
			return fmt.Errorf("vector %d: %w", len(vecs), err)
		}
		vecs = append(vecs, v)
		return nil
	})
	return vecs, err
}
