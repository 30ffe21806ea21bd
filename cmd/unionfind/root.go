package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/FrenchMajesty/unionfind/utils/disjoint_set"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the CLI. Every flag can also be set through a
// UNIONFIND_<FLAG> environment variable, e.g. UNIONFIND_ELEMENTS="a b c".
func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "unionfind",
		Short: "Build a disjoint-set forest and print it as a Graphviz digraph",
		Long: "unionfind creates one node per element, merges the given pairs and prints the\n" +
			"resulting parent links for dot, e.g. `unionfind | dot -Tsvg > forest.svg`.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := forestFromConfig(v)
			if err != nil {
				return err
			}
			return writeOutput(cmd, v.GetString("output"), disjoint_set.ExportText(v.GetString("name"), set))
		},
	}

	groupsCmd := &cobra.Command{
		Use:   "groups",
		Short: "Print each set as its representative followed by its members",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := forestFromConfig(v)
			if err != nil {
				return err
			}
			return writeOutput(cmd, v.GetString("output"), formatGroups(set))
		},
	}
	rootCmd.AddCommand(groupsCmd)

	flags := rootCmd.PersistentFlags()
	flags.StringSlice("elements", defaultElements, "elements to place in the forest")
	flags.StringArray("union", defaultUnions, "pair to merge as a"+pairSeparator+"b; #i refers to the i-th element")
	flags.String("name", "unionfind", "graph name in the digraph header")
	flags.StringP("output", "o", "", "write to this file instead of stdout")
	flags.BoolP("verbose", "v", false, "log the forest summary to stderr")

	v.SetEnvPrefix("UNIONFIND")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("failed to bind flags: %v", err))
	}

	return rootCmd
}

func forestFromConfig(v *viper.Viper) ([]disjoint_set.Node[string], error) {
	elements := v.GetStringSlice("elements")
	unions := v.GetStringSlice("union")

	set, err := buildForest(elements, unions)
	if err != nil {
		return nil, err
	}

	if v.GetBool("verbose") && len(set) > 0 {
		f := set[0].Forest()
		log.Printf("forest %s: %d nodes, %d sets after %d unions", f.ID(), f.Len(), f.CountSets(), len(unions))
	}
	return set, nil
}

func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output to %s: %w", path, err)
	}
	return nil
}
