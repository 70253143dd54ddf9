// Package fbexport provides a one-shot, resumable export of a Firebase
// project's data into a local directory of JSON files.
//
// It exports four data domains: Firestore (all top-level collections plus
// transitively discovered nested collections), Authentication (user records
// with custom claims, provider data and MFA detail), Cloud Storage (object
// metadata, signed download URLs and optional content downloads), and the
// Realtime Database (the complete tree).
//
// Progress is checkpointed to disk after every meaningfully-sized unit of
// work, so an interrupted run can be re-invoked and resumes without redoing
// completed work or duplicating records. Safety ceilings on cumulative reads
// and exported records abort a runaway run while leaving a valid checkpoint.
//
// # Basic Usage
//
// Create a client and run the export:
//
//	ctx := context.Background()
//
//	config := fbexport.DefaultConfig()
//	config.StorageBucket = "my-project.appspot.com"
//
//	client, err := fbexport.New(ctx, "my-project", &config,
//	    fbexport.WithCredentialsFile("service-account.json"),
//	    fbexport.WithOutputDir("firebase-export"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	summary, err := client.Export(ctx)
//	if err != nil {
//	    // The checkpoint is kept; re-running resumes where the run stopped.
//	    log.Fatal(err)
//	}
//	fmt.Printf("exported %d users, %d collections\n",
//	    summary.AuthUsers, summary.FirestoreCollections)
//
// # Loading Configuration from YAML
//
//	config, err := fbexport.LoadConfigFromYAML("export.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// The package defines structured error types that can be inspected using
// errors.As:
//
//   - [ExportError]: returned by Export when a run fails or is aborted
//   - [LimitError]: wrapped inside ExportError when a safety ceiling is hit
//   - [ValidationError]: returned for invalid configuration
package fbexport
