// Package command implements the Command Tree Translator: it walks a
// graph of J-side command nodes and builds the B-side command
// descriptors a client needs for autocompletion, coalescing compatible
// sibling literals into enum parameters and splitting incompatible ones
// into distinct overloads.
package command

import (
	"io"

	pk "github.com/Tnze/go-mc/net/packet"
)

// NodeKind distinguishes root/literal/argument nodes on the wire. The
// translator itself only cares whether a node carries a parser
// (HasParser), but the kind is kept for decode fidelity and debugging.
type NodeKind byte

const (
	NodeRoot     NodeKind = 0
	NodeLiteral  NodeKind = 1
	NodeArgument NodeKind = 2
)

const (
	flagNodeTypeMask  = 0x03
	flagHasRedirect   = 0x08
	flagHasSuggestion = 0x10
)

// CommandNode is one node of the J-side command graph (spec.md §3
// "Command Node"). Parser is empty for root/literal nodes.
type CommandNode struct {
	Kind     NodeKind `json:"kind"`
	Name     string   `json:"name"`
	Parser   string   `json:"parser,omitempty"`
	Children []int32  `json:"children,omitempty"`
	Redirect *int32   `json:"redirect,omitempty"`
}

// HasParser reports whether this node is an argument node. The builder
// only ever distinguishes "has parser" from "no parser" — it never
// branches on NodeRoot vs NodeLiteral directly.
func (n *CommandNode) HasParser() bool { return n.Parser != "" }

// ReadFrom decodes one command node in the vanilla declare-commands wire
// format: a flags byte, a VarInt-prefixed child index array, an optional
// redirect index, an optional literal/argument name, and — for argument
// nodes — a parser identifier followed by an optional suggestions
// identifier. Parser-specific property payloads (numeric range flags,
// string mode, entity/score-holder selector flags) are not decoded: the
// reader expects nothing between the parser identifier and the
// suggestions identifier.
func (n *CommandNode) ReadFrom(r io.Reader) (int64, error) {
	var total int64

	var flags pk.UnsignedByte
	nn, err := flags.ReadFrom(r)
	total += nn
	if err != nil {
		return total, &DecodeError{Field: "flags", Err: err}
	}
	n.Kind = NodeKind(flags & flagNodeTypeMask)

	var childCount pk.VarInt
	nn, err = childCount.ReadFrom(r)
	total += nn
	if err != nil {
		return total, &DecodeError{Field: "child count", Err: err}
	}
	n.Children = make([]int32, 0, int(childCount))
	for i := int32(0); i < int32(childCount); i++ {
		var idx pk.VarInt
		nn, err = idx.ReadFrom(r)
		total += nn
		if err != nil {
			return total, &DecodeError{Field: "child index", Err: err}
		}
		n.Children = append(n.Children, int32(idx))
	}

	if flags&flagHasRedirect != 0 {
		var redirect pk.VarInt
		nn, err = redirect.ReadFrom(r)
		total += nn
		if err != nil {
			return total, &DecodeError{Field: "redirect index", Err: err}
		}
		v := int32(redirect)
		n.Redirect = &v
	}

	if n.Kind == NodeLiteral || n.Kind == NodeArgument {
		var name pk.String
		nn, err = name.ReadFrom(r)
		total += nn
		if err != nil {
			return total, &DecodeError{Field: "name", Err: err}
		}
		n.Name = string(name)
	}

	if n.Kind == NodeArgument {
		var parser pk.String
		nn, err = parser.ReadFrom(r)
		total += nn
		if err != nil {
			return total, &DecodeError{Field: "parser", Err: err}
		}
		n.Parser = string(parser)

		if flags&flagHasSuggestion != 0 {
			var suggestions pk.String
			nn, err = suggestions.ReadFrom(r)
			total += nn
			if err != nil {
				return total, &DecodeError{Field: "suggestions type", Err: err}
			}
		}
	}

	return total, nil
}
