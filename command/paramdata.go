package command

// ParamKind is the B-side parameter type tag (spec.md §4.4 "Parser
// mapping"). The zero value means "no type tag" — used when a
// CommandParamData instead carries an Enum.
type ParamKind string

const (
	ParamFloat    ParamKind = "FLOAT"
	ParamInt      ParamKind = "INT"
	ParamTarget   ParamKind = "TARGET"
	ParamBlockPos ParamKind = "BLOCK_POSITION"
	ParamPosition ParamKind = "POSITION"
	ParamMessage  ParamKind = "MESSAGE"
	ParamJSON     ParamKind = "JSON"
	ParamFilePath ParamKind = "FILE_PATH"
	ParamOperator ParamKind = "OPERATOR"
	ParamString   ParamKind = "STRING"
)

// CommandEnum is a closed set of permitted literal values for a
// parameter (spec.md §3 "CommandParamData"). Soft is always false for
// anything this translator emits (spec.md §6).
type CommandEnum struct {
	Name   string
	Values []string
	Soft   bool
}

// ParamData mirrors the source's CommandParamData: exactly one of Enum
// or Type is set.
type ParamData struct {
	Name     string
	Optional bool
	Enum     *CommandEnum
	Type     ParamKind
	Postfix  string
	Options  uint32
}

// boolEnumValues backs the BOOL parser mapping; shared rather than
// re-allocated per call since it is never mutated (spec.md §4.4, BOOL
// row).
var boolEnumValues = []string{"true", "false"}

// mapParserKind converts a J parser identifier to its B-side
// representation: either a type tag, or a named enum. external supplies
// the three registry-dependent enums that must be fetched at
// translation time rather than cached at startup (spec.md §9 "Design
// Notes"); itemNames is the Item Registry's J-name list, used for
// ITEM_STACK.
func mapParserKind(parser string, paramName string, itemNames []string, external ExternalEnumSource) (ParamKind, *CommandEnum) {
	switch parser {
	case "FLOAT", "DOUBLE", "ROTATION":
		return ParamFloat, nil
	case "INTEGER":
		return ParamInt, nil
	case "ENTITY", "GAME_PROFILE":
		return ParamTarget, nil
	case "BLOCK_POS":
		return ParamBlockPos, nil
	case "COLUMN_POS", "VEC3":
		return ParamPosition, nil
	case "MESSAGE":
		return ParamMessage, nil
	case "NBT", "NBT_COMPOUND_TAG", "NBT_TAG", "NBT_PATH":
		return ParamJSON, nil
	case "RESOURCE_LOCATION", "FUNCTION":
		return ParamFilePath, nil
	case "BOOL":
		return "", &CommandEnum{Name: paramName, Values: boolEnumValues, Soft: false}
	case "OPERATION":
		return ParamOperator, nil
	case "BLOCK_STATE":
		values := []string{}
		if external != nil {
			values = external.BlockIdentifiers()
		}
		return "", &CommandEnum{Name: paramName, Values: values, Soft: false}
	case "ITEM_STACK":
		return "", &CommandEnum{Name: paramName, Values: itemNames, Soft: false}
	case "ITEM_ENCHANTMENT":
		values := []string{}
		if external != nil {
			values = external.EnchantmentIdentifiers()
		}
		return "", &CommandEnum{Name: paramName, Values: values, Soft: false}
	case "ENTITY_SUMMON":
		values := []string{}
		if external != nil {
			values = external.EntitySummonIdentifiers()
		}
		return "", &CommandEnum{Name: paramName, Values: values, Soft: false}
	case "COLOR":
		return "", &CommandEnum{Name: paramName, Values: namedTextColors, Soft: false}
	default:
		// Unrecognized or absent parser: fall through to STRING
		// (spec.md §7 "Unrecognized J parser").
		return ParamString, nil
	}
}
