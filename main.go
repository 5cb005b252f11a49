package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"goreview/adapters/postgres"
	"goreview/adapters/tabular"
	"goreview/domain/review"
	"goreview/internal/config"
	"goreview/internal/errors"
	"goreview/internal/extract"
	"goreview/internal/prompt"
	"goreview/internal/report"
	"goreview/internal/store"
	"goreview/internal/validate"
	"goreview/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	rootCmd := &cobra.Command{
		Use:           "goreview",
		Short:         "Turn an objectives export into performance review prompts and validated drafts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newParseCmd(),
		newPromptsCmd(),
		newValidateCmd(),
		newHistoryCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\n❌ Error: %v\n", err)
		os.Exit(1)
	}
}

// parseExport runs the extraction pipeline over one objectives export.
func parseExport(path string) (*review.Dataset, error) {
	fmt.Println("🔍 Parsing objectives export...")
	table, err := tabular.NewDataReader(path).Read()
	if err != nil {
		return nil, err
	}
	return extract.Assemble(table), nil
}

// promptForRole asks for the role on stdin. Blank or unavailable input falls
// back to the configured default.
func promptForRole(defaultRole string) string {
	fmt.Println("\n⚠️  Could not detect role from the export.")
	fmt.Print("Please enter your role (e.g., SD2, SD3, Staff Engineer): ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if role := strings.TrimSpace(line); role != "" {
		return role
	}
	return defaultRole
}

func newParseCmd() *cobra.Command {
	var jsonPath string

	cmd := &cobra.Command{
		Use:   "parse [export-file]",
		Short: "Extract the review dataset from an objectives export",
		Long: `Parse a CSV or XLSX objectives export and print the dataset summary.

Example: goreview parse ~/Downloads/MyObjectives.csv --json data.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := parseExport(args[0])
			if err != nil {
				return err
			}

			report.WriteDatasetSummary(os.Stdout, ds)

			if jsonPath != "" {
				if err := store.SaveDataset(jsonPath, ds); err != nil {
					return err
				}
				fmt.Printf("\n💾 Saved parsed data to: %s\n", jsonPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", "", "Save the parsed dataset as JSON")

	return cmd
}

func newPromptsCmd() *cobra.Command {
	var role string
	var outputPath string
	var jsonPath string

	cmd := &cobra.Command{
		Use:   "prompts [export-file]",
		Short: "Generate the twelve section prompts from an objectives export",
		Long: `Parse an objectives export and build the Markdown prompt pack, one
prompt per review section.

Examples:
  goreview prompts ~/Downloads/MyObjectives.csv
  goreview prompts ~/Downloads/MyObjectives.csv --output review_prompts.md
  goreview prompts ~/Downloads/MyObjectives.csv --role "SD3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ds, err := parseExport(args[0])
			if err != nil {
				return err
			}
			if role != "" {
				ds.Metadata.Role = role
			}
			if ds.Metadata.Role == review.RoleUnknown {
				ds.Metadata.Role = promptForRole(cfg.Review.DefaultRole)
			}

			report.WriteDatasetSummary(os.Stdout, ds)

			fmt.Println("\n📝 Generating review sections...")
			fmt.Println(strings.Repeat("=", 70))
			for _, section := range review.Sections {
				fmt.Printf("\n%s\n", section.Group())
				fmt.Printf("Section %d: %s\n", section.Number, section.Name)
				fmt.Println(strings.Repeat("-", 70))
				if _, err := prompt.ForSection(section.Number, ds); err != nil {
					return err
				}
				fmt.Printf("\n✓ Generated prompt for section %d\n", section.Number)
			}

			doc, err := report.PromptDocument(ds)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := store.SaveText(outputPath, doc); err != nil {
					return err
				}
				fmt.Printf("\n💾 Saved prompts to: %s\n", outputPath)
				fmt.Println("\n📋 Next steps:")
				fmt.Println("1. Open the prompts file")
				fmt.Println("2. Copy each section's prompt to your LLM (Claude, ChatGPT, etc.)")
				fmt.Println("3. Collect the generated responses")
				fmt.Println("4. Compile into your final performance review document")
			} else {
				fmt.Println("\n" + strings.Repeat("=", 70))
				fmt.Println("📋 REVIEW GENERATION PROMPTS")
				fmt.Println(strings.Repeat("=", 70))
				fmt.Println("\nCopy each prompt below to your LLM (Claude, GPT, etc.) to generate responses.")
				fmt.Println("Then compile the responses into your final performance review.")
				fmt.Println()
				fmt.Println(doc)
			}

			if jsonPath != "" {
				if err := store.SaveDataset(jsonPath, ds); err != nil {
					return err
				}
				fmt.Printf("\n💾 Saved parsed data to: %s\n", jsonPath)
			}

			fmt.Println("\n✅ Generation complete!")
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Override role detection (e.g., SD2, SD3, Staff Engineer)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the prompt pack to a file instead of stdout")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Save the parsed dataset as JSON")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "validate [dataset-json] [responses-json]",
		Short: "Score authored review responses against the dataset",
		Long: `Load a parsed dataset and a responses file, run every section through
the validation battery, and print the report.

Example: goreview validate data.json responses.json --output report.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ds, err := store.LoadDataset(args[0])
			if err != nil {
				return err
			}
			responses, err := store.LoadResponses(args[1])
			if err != nil {
				return err
			}

			rep := validate.New(ds).ValidateReview(responses)
			report.WriteValidationReport(os.Stdout, rep)

			if outputPath != "" {
				if err := store.SaveReport(outputPath, rep); err != nil {
					return err
				}
				fmt.Printf("\n💾 Saved validation report to: %s\n", outputPath)
			}

			if cfg.Archive.Enabled {
				archive, err := postgres.Connect(cfg.Archive.DatabaseURL)
				if err != nil {
					return err
				}
				defer archive.Close()

				id, err := archive.SaveReport(cmd.Context(), ds.Metadata.Owner, rep)
				if err != nil {
					log.Printf("[Validate] Failed to archive report: %v", err)
				} else {
					fmt.Printf("\n💾 Archived report as: %s\n", id)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save the validation report as JSON")

	return cmd
}

func newHistoryCmd() *cobra.Command {
	var owner string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived validation reports",
		Long: `List validation reports saved to the archive, newest first.

Example: goreview history --owner "Ravi Kumar" --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.Archive.Enabled {
				return errors.ConfigInvalid("DATABASE_URL is required for report history")
			}

			archive, err := postgres.Connect(cfg.Archive.DatabaseURL)
			if err != nil {
				return err
			}
			defer archive.Close()

			records, err := archive.ListReports(cmd.Context(), owner, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No archived reports found.")
				return nil
			}

			fmt.Println("\n" + strings.Repeat("=", 70))
			fmt.Println("🗄  ARCHIVED REPORTS")
			fmt.Println(strings.Repeat("=", 70))
			fmt.Println()
			for _, rec := range records {
				fmt.Printf("%s  %s  %5.1f/100  %-17s  %s\n",
					rec.ID, rec.CreatedAt.Format("2006-01-02 15:04"), rec.AverageScore, rec.OverallStatus, rec.Owner)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Only list reports for this owner")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of reports to list")

	return cmd
}

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP review service",
		Long: `Start the web server. The report archive is enabled when DATABASE_URL
is configured.

Example: goreview serve --port 9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}

			var archive *postgres.ReviewArchive
			if cfg.Archive.Enabled {
				archive, err = postgres.Connect(cfg.Archive.DatabaseURL)
				if err != nil {
					return err
				}
				defer archive.Close()
			} else {
				log.Println("Report archive disabled, set DATABASE_URL to enable it")
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			// Handle graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				log.Println("[Serve] Shutdown signal received")
				cancel()
			}()

			return ui.NewServer(cfg, archive).Start(ctx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (overrides PORT)")

	return cmd
}
