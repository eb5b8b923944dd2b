// Command bridge loads the bundled item assets, builds the
// Item Registry, and — given a JSON-encoded command-node dump — runs the
// Command Tree Translator once, printing the resulting descriptor
// count. It is a diagnostic entry point, not a running proxy: the
// session packet-send path is left to whatever host embeds this
// module (spec.md §1).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/SwallowMC/Geyser/assets"
	"github.com/SwallowMC/Geyser/command"
	"github.com/SwallowMC/Geyser/config"
	"github.com/SwallowMC/Geyser/item"
)

func main() {
	nodesPath := flag.String("nodes", "", "path to a JSON-encoded []*command.CommandNode dump to translate")
	rootIndex := flag.Int("root", 0, "index of the root node in -nodes")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("loading config", "error", err)
		os.Exit(1)
	}

	loader := assets.NewLoader(assets.DefaultResourceSource{})

	palette, err := loader.LoadPalette()
	if err != nil {
		log.Error("loading palette", "error", err)
		os.Exit(1)
	}
	mapping, err := loader.LoadMapping()
	if err != nil {
		log.Error("loading mapping", "error", err)
		os.Exit(1)
	}
	creative, err := loader.LoadCreativeItems()
	if err != nil {
		log.Error("loading creative items", "error", err)
		os.Exit(1)
	}

	registry, err := item.Build(palette, mapping, creative, item.BuildOptions{
		SynthesizeExtraItem: cfg.SynthesizeExtraItem,
		Logger:              log,
	})
	if err != nil {
		log.Error("building item registry", "error", err)
		os.Exit(1)
	}
	log.Info("item registry built", "entries", registry.Size(), "creative_items", len(registry.CreativeItems))

	if *nodesPath == "" {
		return
	}

	nodes, err := loadNodes(*nodesPath)
	if err != nil {
		log.Error("loading command nodes", "error", err)
		os.Exit(1)
	}

	descs := command.Translate(nodes, *rootIndex, command.TranslateOptions{
		SuggestionsEnabled: cfg.CommandSuggestionsEnabled,
		ItemNames:          registry.JNames,
		Logger:             log,
	})

	fmt.Printf("translated %d command descriptors\n", len(descs))
	for _, d := range descs {
		fmt.Printf("  %s: %d overload(s), aliases=%v\n", d.Name, len(d.Overloads), d.AliasesEnum.Values)
	}
}

func loadNodes(path string) ([]*command.CommandNode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var nodes []*command.CommandNode
	if err := json.NewDecoder(f).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("decoding node dump: %w", err)
	}
	return nodes, nil
}
