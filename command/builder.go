package command

import "log/slog"

// BuildOverloads computes the overload matrix for one root command
// node: it follows the node's redirect (if any), then builds and
// flattens the ParamInfo tree (spec.md §4.4). A node with no children
// produces an empty (0x0) matrix, matching the source's early return.
func BuildOverloads(node *CommandNode, allNodes []*CommandNode, itemNames []string, external ExternalEnumSource, log *slog.Logger) [][]ParamData {
	if log == nil {
		log = slog.Default()
	}

	if node.Redirect != nil {
		target := allNodes[*node.Redirect]
		log.Debug("command: redirecting", "from", node.Name, "to", target.Name)
		node = target
	}

	if len(node.Children) == 0 {
		return [][]ParamData{}
	}

	root := &ParamInfo{Node: node}
	bp := &buildParams{allNodes: allNodes, itemNames: itemNames, external: external}
	root.BuildChildren(bp)

	return root.CollectTree()
}
