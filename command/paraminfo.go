package command

// ParamInfo is a tree node wrapping a CommandNode plus the ParamData it
// is represented by on the B side (spec.md §3 "ParamInfo"). Children is
// a list of sibling slots: each slot is a distinct subcommand branch,
// and the inner list holds every ParamInfo merged into that slot as an
// enum value. The root ParamInfo (built directly on the command node
// passed to the builder) carries a nil Data — it is never itself
// emitted.
type ParamInfo struct {
	Node     *CommandNode
	Data     *ParamData
	Children [][]*ParamInfo
}

// buildParams holds the read-only context build_children/compatible
// need: the full node table and the collaborators mapParserKind needs.
type buildParams struct {
	allNodes  []*CommandNode
	itemNames []string
	external  ExternalEnumSource
}

// BuildChildren populates pi.Children from pi.Node.Children, applying
// the literal-merge-or-new-slot rule for literals and always creating a
// fresh slot for arguments, then recurses into every merged/created
// child (spec.md §4.4 "build_children").
func (pi *ParamInfo) BuildChildren(bp *buildParams) {
	enumSlotIndex := -1

	for _, childID := range pi.Node.Children {
		child := bp.allNodes[childID]

		if !child.HasParser() {
			if enumSlotIndex == -1 {
				enumSlotIndex = len(pi.Children)
				pi.createLiteralSlot(child)
				continue
			}

			foundCompatible := false
		mergeSearch:
			for _, slot := range pi.Children {
				for i, existing := range slot {
					if compatible(bp.allNodes, existing.Node, child) {
						foundCompatible = true
						slot[i] = extendEnum(existing, child.Name)
						break mergeSearch
					}
				}
			}
			if !foundCompatible {
				pi.createLiteralSlot(child)
			}
			continue
		}

		kind, enum := mapParserKind(child.Parser, child.Name, bp.itemNames, bp.external)
		data := &ParamData{Name: child.Name, Optional: false, Type: kind, Enum: enum}
		pi.Children = append(pi.Children, []*ParamInfo{{Node: child, Data: data}})
	}

	for _, slot := range pi.Children {
		for _, child := range slot {
			child.BuildChildren(bp)
		}
	}
}

// createLiteralSlot opens a new sibling slot containing a single
// ParamInfo: the literal as an enum of one value whose enum name is the
// literal's own name.
func (pi *ParamInfo) createLiteralSlot(node *CommandNode) {
	data := &ParamData{
		Name:     node.Name,
		Optional: false,
		Enum:     &CommandEnum{Name: node.Name, Values: []string{node.Name}, Soft: false},
	}
	pi.Children = append(pi.Children, []*ParamInfo{{Node: node, Data: data}})
}

// extendEnum rebuilds existing's ParamInfo with value appended to its
// enum's values, leaving the enum's name unchanged — even though that
// name was chosen from whichever literal first opened the slot (spec.md
// §9, open question: preserved verbatim).
func extendEnum(existing *ParamInfo, value string) *ParamInfo {
	values := make([]string, len(existing.Data.Enum.Values)+1)
	copy(values, existing.Data.Enum.Values)
	values[len(values)-1] = value

	newData := &ParamData{
		Name:     existing.Data.Name,
		Optional: false,
		Enum:     &CommandEnum{Name: existing.Data.Enum.Name, Values: values, Soft: false},
	}
	return &ParamInfo{Node: existing.Node, Data: newData}
}

// compatible determines whether a and b belong in the same overload:
// same node is trivially compatible; otherwise both must use the same
// parser and have the same number of children, and every child of a
// must have some recursively-compatible counterpart among b's children
// (spec.md §4.4 "Compatibility").
func compatible(allNodes []*CommandNode, a, b *CommandNode) bool {
	if a == b {
		return true
	}
	if a.Parser != b.Parser {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for _, ai := range a.Children {
		a1 := allNodes[ai]
		found := false
		for _, bi := range b.Children {
			if compatible(allNodes, a1, allNodes[bi]) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// CollectTree flattens the tree into the overload matrix: for each
// slot, for each ParamInfo in it, depth-first accumulate the child's
// own tree, prefixing the child's ParamData onto every row (spec.md
// §4.4 "collect_tree").
func (pi *ParamInfo) CollectTree() [][]ParamData {
	var rows [][]ParamData

	for _, slot := range pi.Children {
		for _, child := range slot {
			childTree := child.CollectTree()
			if len(childTree) == 0 {
				rows = append(rows, []ParamData{*child.Data})
				continue
			}
			for _, sub := range childTree {
				row := make([]ParamData, 0, len(sub)+1)
				row = append(row, *child.Data)
				row = append(row, sub...)
				rows = append(rows, row)
			}
		}
	}

	return rows
}
