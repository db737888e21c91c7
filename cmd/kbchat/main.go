package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "kbchat",
	Short: "Knowledge base chatbot server and CLI",
	Long: `kbchat answers questions grounded in a fixed knowledge base.

Queries are embedded, ranked against the stored documents by cosine
similarity, and answered with Gemini only when a document is relevant
enough. Unrelated questions get a localized refusal instead.`,
	SilenceUsage: true,
}

func main() {
	// Optional .env in the working directory; absence is not an error.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(interactionsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("kbchat version %s\n", version)
	},
}
