// Package snapshot defines the JSON representation of a machine state.
//
// The format follows the one used by single-instruction processor test
// suites:
//
//	{"pc": 49152, "s": 255, "a": 0, "x": 0, "y": 0, "p": 36,
//	 "ram": [[49152, 105], [49153, 5]]}
//
// where ram lists [address, value] pairs. Memory cells not listed are zero.
package snapshot

import (
	"fmt"
	"sort"

	"github.com/go-faster/jx"
)

type State struct {
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8
	P  uint8

	RAM []Cell
}

// Cell is the value of a single memory location.
type Cell struct {
	Addr uint16
	Val  uint8
}

// SortRAM sorts memory cells by address.
func (s *State) SortRAM() {
	sort.Slice(s.RAM, func(i, j int) bool { return s.RAM[i].Addr < s.RAM[j].Addr })
}

func (s *State) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("pc")
	e.Int(int(s.PC))
	e.FieldStart("s")
	e.Int(int(s.SP))
	e.FieldStart("a")
	e.Int(int(s.A))
	e.FieldStart("x")
	e.Int(int(s.X))
	e.FieldStart("y")
	e.Int(int(s.Y))
	e.FieldStart("p")
	e.Int(int(s.P))
	e.FieldStart("ram")
	e.ArrStart()
	for _, c := range s.RAM {
		e.ArrStart()
		e.Int(int(c.Addr))
		e.Int(int(c.Val))
		e.ArrEnd()
	}
	e.ArrEnd()
	e.ObjEnd()
}

func (s *State) Decode(d *jx.Decoder) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "pc":
			s.PC, err = decodeUint16(d)
		case "s":
			s.SP, err = decodeUint8(d)
		case "a":
			s.A, err = decodeUint8(d)
		case "x":
			s.X, err = decodeUint8(d)
		case "y":
			s.Y, err = decodeUint8(d)
		case "p":
			s.P, err = decodeUint8(d)
		case "ram":
			s.RAM = s.RAM[:0]
			err = d.Arr(func(d *jx.Decoder) error {
				var (
					c   Cell
					idx int
				)
				err := d.Arr(func(d *jx.Decoder) error {
					var err error
					switch idx {
					case 0:
						c.Addr, err = decodeUint16(d)
					case 1:
						c.Val, err = decodeUint8(d)
					default:
						return fmt.Errorf("ram cell has more than 2 elements")
					}
					idx++
					return err
				})
				if err != nil {
					return err
				}
				if idx != 2 {
					return fmt.Errorf("ram cell has %d elements, want 2", idx)
				}
				s.RAM = append(s.RAM, c)
				return nil
			})
		default:
			err = d.Skip()
		}
		if err != nil {
			return fmt.Errorf("%q: %w", key, err)
		}
		return nil
	})
}

// Marshal returns the JSON encoding of s.
func (s *State) Marshal() []byte {
	var e jx.Encoder
	s.Encode(&e)
	return e.Bytes()
}

// Unmarshal decodes the JSON encoded state in buf into s.
func (s *State) Unmarshal(buf []byte) error {
	return s.Decode(jx.DecodeBytes(buf))
}

func decodeUint16(d *jx.Decoder) (uint16, error) {
	v, err := d.Int()
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 0xFFFF {
		return 0, fmt.Errorf("value %d out of 16-bit range", v)
	}
	return uint16(v), nil
}

func decodeUint8(d *jx.Decoder) (uint8, error) {
	v, err := d.Int()
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 0xFF {
		return 0, fmt.Errorf("value %d out of 8-bit range", v)
	}
	return uint8(v), nil
}
