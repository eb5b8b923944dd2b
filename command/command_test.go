package command_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SwallowMC/Geyser/command"
)

func literal(name string, children ...int32) *command.CommandNode {
	return &command.CommandNode{Kind: command.NodeLiteral, Name: name, Children: children}
}

func argument(name, parser string) *command.CommandNode {
	return &command.CommandNode{Kind: command.NodeArgument, Name: name, Parser: parser}
}

func root(children ...int32) *command.CommandNode {
	return &command.CommandNode{Kind: command.NodeRoot, Children: children}
}

// gamerule builds the spec.md §8 scenario-4 node graph:
//
//	0 root -> 1 gamerule -> {2 doDaylightCycle, 3 announceAdvancements, 4 randomTickSpeed}
//	2 -> 5 value(BOOL); 3 -> 6 value(BOOL); 4 -> 7 value(INTEGER)
func gamerule() []*command.CommandNode {
	return []*command.CommandNode{
		root(1),
		literal("gamerule", 2, 3, 4),
		literal("doDaylightCycle", 5),
		literal("announceAdvancements", 6),
		literal("randomTickSpeed", 7),
		argument("value", "BOOL"),
		argument("value", "BOOL"),
		argument("value", "INTEGER"),
	}
}

func TestGameruleCoalescesCompatibleLiteralsSplitsIncompatible(t *testing.T) {
	nodes := gamerule()
	descs := command.Translate(nodes, 0, command.TranslateOptions{SuggestionsEnabled: true})
	require.Len(t, descs, 1)

	matrix := descs[0].Overloads
	require.Len(t, matrix, 2)

	require.NotNil(t, matrix[0][0].Enum)
	require.ElementsMatch(t, []string{"doDaylightCycle", "announceAdvancements"}, matrix[0][0].Enum.Values)
	require.NotNil(t, matrix[0][1].Enum)
	require.Equal(t, []string{"true", "false"}, matrix[0][1].Enum.Values)

	require.NotNil(t, matrix[1][0].Enum)
	require.Equal(t, []string{"randomTickSpeed"}, matrix[1][0].Enum.Values)
	require.Equal(t, command.ParamInt, matrix[1][1].Type)
}

// teleportAliasGraph builds the spec.md §8 scenario-5 node graph: two
// root children, teleport and tp, where tp redirects to teleport.
func teleportAliasGraph() []*command.CommandNode {
	redirect := int32(1)
	return []*command.CommandNode{
		root(1, 2),
		literal("teleport", 3),
		{Kind: command.NodeLiteral, Name: "tp", Redirect: &redirect},
		argument("target", "ENTITY"),
	}
}

func TestAliasRedirectCoalescesIntoOneDescriptor(t *testing.T) {
	nodes := teleportAliasGraph()
	descs := command.Translate(nodes, 0, command.TranslateOptions{SuggestionsEnabled: true})
	require.Len(t, descs, 1)
	require.Equal(t, "teleport", descs[0].Name)
	require.ElementsMatch(t, []string{"teleport", "tp"}, descs[0].AliasesEnum.Values)
}

func TestSuggestionsDisabledProducesEmptyList(t *testing.T) {
	nodes := gamerule()
	descs := command.Translate(nodes, 0, command.TranslateOptions{SuggestionsEnabled: false})
	require.NotNil(t, descs)
	require.Empty(t, descs)
}

func TestTranslateIsDeterministicAcrossInvocations(t *testing.T) {
	nodes := gamerule()
	first := command.Translate(nodes, 0, command.TranslateOptions{SuggestionsEnabled: true})
	second := command.Translate(nodes, 0, command.TranslateOptions{SuggestionsEnabled: true})
	require.True(t, reflect.DeepEqual(first, second), "translating the same packet twice must produce byte-identical output")
}

func TestDivergentParserKindsProduceDistinctOverloadRows(t *testing.T) {
	nodes := gamerule()
	descs := command.Translate(nodes, 0, command.TranslateOptions{SuggestionsEnabled: true})
	require.Len(t, descs, 1)
	require.Len(t, descs[0].Overloads, 2)
	require.NotEqual(t, descs[0].Overloads[0][1].Type, descs[0].Overloads[1][1].Type)
}
