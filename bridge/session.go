package bridge

import (
	"log/slog"

	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"

	"github.com/SwallowMC/Geyser/command"
	"github.com/SwallowMC/Geyser/item"
)

// PacketWriter is the minimal connection capability ProtocolSink needs,
// mirroring the teacher's *net.Conn.WritePacket dependency
// (mj41-go-mc/server/configuration.go's AcceptConfig) but for
// gophertunnel's packet type instead of go-mc's.
type PacketWriter interface {
	WritePacket(pk packet.Packet) error
}

// ProtocolSink adapts a PacketWriter into a PacketSink by flattening an
// OutboundMessage into a single *packet.AvailableCommands write.
type ProtocolSink struct {
	Conn PacketWriter
}

func (s *ProtocolSink) Send(msg OutboundMessage) error {
	pk := &packet.AvailableCommands{
		Commands:   msg.Commands,
		Enums:      msg.Enums,
		EnumValues: msg.EnumValues,
	}
	return s.Conn.WritePacket(pk)
}

// Session ties together the immutable Item Registry and the per-packet
// Command Tree Translator for one connected client. It holds no mutable
// translator state between calls (spec.md §5: command translation state
// is local to each invocation).
type Session struct {
	Registry     *item.Registry
	Sink         PacketSink
	Descriptions command.DescriptionSource
	External     command.ExternalEnumSource
	Logger       *slog.Logger

	SuggestionsEnabled bool
}

// DeclareCommands runs the translator over one declare-commands node
// graph and sends the resulting (possibly empty) command message
// through the session's sink — the translator's sole I/O boundary
// (spec.md §4.3 step 5).
func (s *Session) DeclareCommands(nodes []*command.CommandNode, rootIndex int) error {
	descs := command.Translate(nodes, rootIndex, command.TranslateOptions{
		SuggestionsEnabled: s.SuggestionsEnabled,
		ItemNames:          s.Registry.JNames,
		External:           s.External,
		Descriptions:       s.Descriptions,
		Logger:             s.Logger,
	})

	commands, enums, enumValues := command.ToProtocol(descs)
	return s.Sink.Send(OutboundMessage{
		Commands:   commands,
		Enums:      enums,
		EnumValues: enumValues,
	})
}
