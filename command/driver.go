package command

import (
	"log/slog"
	"strings"
)

// CommandDescriptor is one outbound command entry (spec.md §3 "Command
// descriptor").
type CommandDescriptor struct {
	Name        string
	Description string
	Flags       uint16
	Permission  uint8
	AliasesEnum CommandEnum
	Overloads   [][]ParamData
}

// TranslateOptions bundles Translate's external collaborators
// (spec.md §1: description lookup and the three registry-dependent
// enum sources are consumed through narrow interfaces, never reached
// into directly).
type TranslateOptions struct {
	SuggestionsEnabled bool
	ItemNames          []string
	External           ExternalEnumSource
	Descriptions       DescriptionSource
	Logger             *slog.Logger
}

type commandGroup struct {
	matrix [][]ParamData
	names  []string // lowercase, in first-seen order; names[0] is canonical
}

// Translate walks root's children, deduplicates nodes and aliases by
// first-seen, groups commands whose overload matrices are structurally
// identical as aliases of one another, and returns the resulting
// command descriptors in first-seen order (spec.md §4.3). When
// suggestions are disabled, it returns an empty, non-nil slice — the
// caller is expected to still send an (empty) command message so the B
// client doesn't fall back to its own built-in help command.
func Translate(nodes []*CommandNode, rootIndex int, opts TranslateOptions) []CommandDescriptor {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	if !opts.SuggestionsEnabled {
		log.Debug("command: not sending translated command suggestions, disabled")
		return []CommandDescriptor{}
	}

	root := nodes[rootIndex]

	seenNodeIndices := make(map[int32]bool)
	seenAliases := make(map[string]bool)
	groups := make(map[string]*commandGroup)
	var groupOrder []string

	for _, childIdx := range root.Children {
		if seenNodeIndices[childIdx] {
			continue
		}
		seenNodeIndices[childIdx] = true

		node := nodes[childIdx]
		lname := strings.ToLower(node.Name)
		if seenAliases[lname] {
			continue
		}
		seenAliases[lname] = true

		matrix := BuildOverloads(node, nodes, opts.ItemNames, opts.External, log)
		key := matrixKey(matrix)

		grp, ok := groups[key]
		if !ok {
			grp = &commandGroup{matrix: matrix}
			groups[key] = grp
			groupOrder = append(groupOrder, key)
		}
		grp.names = append(grp.names, lname)
	}

	descriptors := make([]CommandDescriptor, 0, len(groupOrder))
	for _, key := range groupOrder {
		grp := groups[key]
		canonical := grp.names[0]

		desc := ""
		if opts.Descriptions != nil {
			desc = opts.Descriptions.Description(canonical)
		}

		descriptors = append(descriptors, CommandDescriptor{
			Name:        canonical,
			Description: desc,
			Flags:       0,
			Permission:  0,
			AliasesEnum: CommandEnum{Name: canonical + "Aliases", Values: grp.names, Soft: false},
			Overloads:   grp.matrix,
		})
	}

	log.Debug("command: translated command tree", "count", len(descriptors))
	return descriptors
}
