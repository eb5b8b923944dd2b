package command

import (
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// ToProtocol converts a batch of CommandDescriptors into the three flat
// tables gophertunnel's AvailableCommands packet carries: the commands
// themselves, the static enum definitions they reference, and the
// shared, deduplicated enum value pool (grounded on
// other_examples/oomph-ac-oomph__command.go's findOrCreateEnum pattern).
func ToProtocol(descs []CommandDescriptor) (commands []protocol.Command, enums []protocol.CommandEnum, enumValues []string) {
	valueIndex := make(map[string]uint32)
	enumIndex := make(map[string]uint32)

	internEnumValue := func(v string) uint32 {
		if idx, ok := valueIndex[v]; ok {
			return idx
		}
		idx := uint32(len(enumValues))
		enumValues = append(enumValues, v)
		valueIndex[v] = idx
		return idx
	}

	internEnum := func(e CommandEnum) uint32 {
		if idx, ok := enumIndex[e.Name]; ok {
			return idx
		}
		valueIndices := make([]uint, len(e.Values))
		for i, v := range e.Values {
			valueIndices[i] = uint(internEnumValue(v))
		}
		idx := uint32(len(enums))
		enums = append(enums, protocol.CommandEnum{Type: e.Name, ValueIndices: valueIndices})
		enumIndex[e.Name] = idx
		return idx
	}

	paramType := func(p ParamData) uint32 {
		var t uint32 = protocol.CommandArgValid
		if p.Enum != nil {
			idx := internEnum(*p.Enum)
			if p.Enum.Soft {
				return t | protocol.CommandArgSoftEnum | idx
			}
			return t | protocol.CommandArgEnum | idx
		}
		return t | paramKindArgType(p.Type)
	}

	aliasesEnumIdx := func(e CommandEnum) uint32 {
		return internEnum(e)
	}

	for _, d := range descs {
		aliasesIdx := aliasesEnumIdx(d.AliasesEnum)

		var overloads []protocol.CommandOverload
		for _, row := range d.Overloads {
			params := make([]protocol.CommandParameter, len(row))
			for i, p := range row {
				params[i] = protocol.CommandParameter{
					Name:     p.Name,
					Type:     paramType(p),
					Optional: p.Optional,
				}
			}
			overloads = append(overloads, protocol.CommandOverload{Parameters: params})
		}

		commands = append(commands, protocol.Command{
			Name:            d.Name,
			Description:     d.Description,
			Flags:           d.Flags,
			PermissionLevel: d.Permission,
			AliasesOffset:   aliasesIdx,
			Overloads:       overloads,
		})
	}

	return commands, enums, enumValues
}

// paramKindArgType maps a ParamKind type tag onto gophertunnel's
// CommandArgType* wire constants (spec.md §4.4 "Parser mapping").
func paramKindArgType(k ParamKind) uint32 {
	switch k {
	case ParamFloat:
		return protocol.CommandArgTypeFloat
	case ParamInt:
		return protocol.CommandArgTypeInt
	case ParamTarget:
		return protocol.CommandArgTypeTarget
	case ParamBlockPos:
		return protocol.CommandArgTypeBlockPosition
	case ParamPosition:
		return protocol.CommandArgTypePosition
	case ParamMessage:
		return protocol.CommandArgTypeMessage
	case ParamJSON:
		return protocol.CommandArgTypeJSON
	case ParamFilePath:
		return protocol.CommandArgTypeFilepath
	case ParamOperator:
		return protocol.CommandArgTypeOperator
	default:
		return protocol.CommandArgTypeString
	}
}
