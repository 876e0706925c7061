package benchmarks

import "github.com/spf13/cobra"

var (
	episodes int
	bestOf   int
	saveFile string
	seed     uint64
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "gearbox",
		Short:         "Turn based environments with observers and action transformers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 1000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVarP(&bestOf, "best-of", "b", 3, "Number of rounds of a rock-paper-scissors game")
	rootCommand.PersistentFlags().StringVarP(&saveFile, "save", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().Uint64Var(&seed, "seed", 0, "Seed of the random policies, 0 to seed from the clock")
	// adding the subcommands here
	rootCommand.AddCommand(PlayCommand())
	rootCommand.AddCommand(CompareCommand())
	rootCommand.AddCommand(GridCommand())
	return rootCommand
}
