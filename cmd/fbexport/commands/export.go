package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	fbexport "github.com/michaelDinelle/FireBaseExportScript"
	"github.com/urfave/cli/v3"
)

// NewExportCommand creates the export command
func NewExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export Firestore, Auth, Storage and Realtime Database data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Export configuration YAML file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory (re-run with the same directory to resume)",
			},
			&cli.StringFlag{
				Name:    "bucket",
				Usage:   "Cloud Storage bucket to export",
				Sources: cli.EnvVars("FBEXPORT_BUCKET"),
			},
			&cli.StringFlag{
				Name:    "database-url",
				Usage:   "Realtime Database URL to export",
				Sources: cli.EnvVars("FBEXPORT_DATABASE_URL"),
			},
			&cli.BoolFlag{
				Name:  "download-files",
				Usage: "Download storage object content, not only metadata",
			},
			&cli.BoolFlag{
				Name:  "no-subcollections",
				Usage: "Skip nested collection discovery and export",
			},
			&cli.IntFlag{
				Name:  "max-reads",
				Usage: "Safety ceiling on cumulative Firestore reads",
			},
			&cli.IntFlag{
				Name:  "max-users",
				Usage: "Safety ceiling on exported auth records",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Action: runExport,
	}
}

func runExport(ctx context.Context, c *cli.Command) error {
	logger := getLogger(ctx)

	// Check required project flag
	projectID := c.String("project")
	if projectID == "" {
		return goerr.New("project flag is required for export command")
	}

	config, err := loadConfig(c)
	if err != nil {
		return err
	}

	if !c.Bool("yes") {
		fmt.Printf("About to export ALL core data from project %q.\n", projectID)
		if !confirm("Proceed with export? (yes/no): ") {
			fmt.Println("Export cancelled.")
			return nil
		}
	}

	opts := []fbexport.Option{
		fbexport.WithLogger(logger),
	}
	if credentials := c.String("credentials"); credentials != "" {
		opts = append(opts, fbexport.WithCredentialsFile(credentials))
	}
	if output := c.String("output"); output != "" {
		opts = append(opts, fbexport.WithOutputDir(output))
	}

	client, err := fbexport.New(ctx, projectID, config, opts...)
	if err != nil {
		return goerr.Wrap(err, "failed to create client")
	}
	defer client.Close()

	logger.Info("Starting export",
		"project", projectID,
		"output", client.OutputDir(),
		"bucket", config.StorageBucket,
		"databaseURL", config.DatabaseURL)

	summary, err := client.Export(ctx)
	if summary != nil {
		printSummary(summary)
	}
	if err != nil {
		var limitErr *fbexport.LimitError
		if errors.As(err, &limitErr) {
			return goerr.Wrap(err, "export aborted by safety ceiling, checkpoint saved")
		}
		return goerr.Wrap(err, "export did not complete, re-run to resume")
	}

	logger.Info("Export complete", "output", client.OutputDir())
	return nil
}

// loadConfig builds the export configuration from the optional YAML file
// and flag overrides.
func loadConfig(c *cli.Command) (*fbexport.Config, error) {
	var config *fbexport.Config
	if path := c.String("config"); path != "" {
		loaded, err := fbexport.LoadConfigFromYAML(path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load config file")
		}
		config = loaded
	} else {
		defaults := fbexport.DefaultConfig()
		config = &defaults
	}

	if bucket := c.String("bucket"); bucket != "" {
		config.StorageBucket = bucket
	}
	if url := c.String("database-url"); url != "" {
		config.DatabaseURL = url
	}
	if c.Bool("download-files") {
		config.IncludeStorageFiles = true
	}
	if c.Bool("no-subcollections") {
		config.IncludeSubcollections = false
	}
	if maxReads := c.Int("max-reads"); maxReads > 0 {
		config.MaxFirestoreReads = int(maxReads)
	}
	if maxUsers := c.Int("max-users"); maxUsers > 0 {
		config.MaxAuthExports = int(maxUsers)
	}

	return config, nil
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "yes"
}

func printSummary(summary *fbexport.Summary) {
	fmt.Println("Export summary:")
	fmt.Printf("  Firestore: %d collections, %d subcollections, %d reads\n",
		summary.FirestoreCollections, summary.FirestoreSubcollections, summary.FirestoreReads)
	fmt.Printf("  Auth: %d users\n", summary.AuthUsers)
	fmt.Printf("  Storage: %d files, %.1fMB\n",
		summary.StorageFiles, float64(summary.StorageBytes)/(1024*1024))
	fmt.Printf("  Realtime DB exported: %v\n", summary.RealtimeDBExported)
	fmt.Printf("  Duration: %.1fs\n", summary.DurationSeconds)
}
