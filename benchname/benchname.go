// Copyright 2024 The VectorTree Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchname decodes the encoded measurement names emitted by
// the VectorTree benchmark harness.
//
// A full measurement name has the wire format
//
//	[BM__]<operation>__<object>__<size tier>__<container>/<iterations>
//
// for example
//
//	BM__emplace_back__type_small__BUFFER_SIZE_1__type_VT/32
//
// The four "__"-separated segments are positional: the harness and
// this decoder agree on segment order and nothing on the wire marks
// which field is which. Both directions of the encoding live in this
// package so the positional contract is stated in exactly one place.
package benchname

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix is the literal prefix the harness prepends to every
// benchmark name. Parse tolerates its absence.
const Prefix = "BM__"

const sep = "__"

// A Key holds the four decoded test dimensions of one measurement.
type Key struct {
	// Operation is the container operation under test,
	// e.g. "emplace_back" or "pop_front".
	Operation string

	// Object identifies the payload shape, e.g. "type_small".
	Object string

	// SizeTier names the initial container size class,
	// e.g. "BUFFER_SIZE_1".
	SizeTier string

	// Container identifies which compared implementation produced
	// the measurement, e.g. "type_VT" or "type_std".
	Container string
}

// A MalformedIdentifierError reports a measurement name that does not
// conform to the encoding grammar. Such a name is never partially
// decoded.
type MalformedIdentifierError struct {
	Name string // the offending input
	Msg  string
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed identifier %q: %s", e.Name, e.Msg)
}

// Parse decodes a full measurement name into its Key and trailing
// iteration count. A leading Prefix is stripped if present. The name
// must contain exactly one "/", the part before it must consist of
// exactly four "__"-separated segments, and the part after it must be
// an unsigned decimal integer; otherwise Parse returns a
// *MalformedIdentifierError.
func Parse(name string) (Key, int, error) {
	base := strings.TrimPrefix(name, Prefix)

	slash := strings.IndexByte(base, '/')
	if slash < 0 {
		return Key{}, 0, &MalformedIdentifierError{name, "missing \"/<iterations>\" suffix"}
	}
	if strings.IndexByte(base[slash+1:], '/') >= 0 {
		return Key{}, 0, &MalformedIdentifierError{name, "more than one \"/\""}
	}

	segs := strings.Split(base[:slash], sep)
	if len(segs) != 4 {
		return Key{}, 0, &MalformedIdentifierError{name, fmt.Sprintf("want 4 \"__\"-separated segments, have %d", len(segs))}
	}

	iters, err := strconv.ParseUint(base[slash+1:], 10, strconv.IntSize-1)
	if err != nil {
		return Key{}, 0, &MalformedIdentifierError{name, fmt.Sprintf("non-numeric iteration count %q", base[slash+1:])}
	}

	return Key{segs[0], segs[1], segs[2], segs[3]}, int(iters), nil
}

// FullName re-encodes k and iters into the wire format, without the
// optional Prefix. For any name Parse accepts that lacks the Prefix,
// FullName of the decoded fields reconstructs the name exactly.
func (k Key) FullName(iters int) string {
	return k.String() + "/" + strconv.Itoa(iters)
}

// String returns the base name of k: the four dimensions joined by
// the segment separator.
func (k Key) String() string {
	return k.Operation + sep + k.Object + sep + k.SizeTier + sep + k.Container
}

// Less reports whether k sorts before o. Keys order lexicographically
// by (Operation, Object, SizeTier, Container); report pagination
// derives figure numbers from this order, so it must not depend on
// input order.
func (k Key) Less(o Key) bool {
	if k.Operation != o.Operation {
		return k.Operation < o.Operation
	}
	if k.Object != o.Object {
		return k.Object < o.Object
	}
	if k.SizeTier != o.SizeTier {
		return k.SizeTier < o.SizeTier
	}
	return k.Container < o.Container
}
