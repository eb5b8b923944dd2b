// Package bridge wires the Item Registry and Command Tree Translator to
// a host session: it owns the one I/O boundary this subsystem has,
// sending the translated command list upstream (spec.md §1, packet send
// path is an external collaborator consumed through a narrow
// interface).
package bridge

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// OutboundMessage is the wire-ready payload of a single
// AvailableCommands send: the flattened command/enum/value tables
// command.ToProtocol produces.
type OutboundMessage struct {
	Commands   []protocol.Command
	Enums      []protocol.CommandEnum
	EnumValues []string
}

// PacketSink is the narrow interface the packet send path is consumed
// through (spec.md §1). Implementations decide how an OutboundMessage
// becomes an actual upstream packet write.
type PacketSink interface {
	Send(msg OutboundMessage) error
}
