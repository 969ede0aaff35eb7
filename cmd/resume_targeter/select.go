package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-targeter/internal/config"
	"github.com/jonathan/resume-targeter/internal/observability"
	"github.com/jonathan/resume-targeter/internal/profile"
	"github.com/jonathan/resume-targeter/internal/schemas"
	"github.com/jonathan/resume-targeter/internal/selection"
	"github.com/jonathan/resume-targeter/internal/store"
	"github.com/jonathan/resume-targeter/internal/types"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select job-relevant experiences and bullets from a profile",
	Long:  "Scores every experience in a canonical profile against a parsed job description and produces a target-aware profile: ranked experiences, per-experience bullet budgets, writer candidates, prioritized skills, and selection diagnostics.",
	RunE:  runSelect,
}

var (
	selectProfile        string
	selectJob            string
	selectSignals        string
	selectOutput         string
	selectConfigPath     string
	selectMinScore       float64
	selectMaxExperiences int
	selectSkillPoolCap   int
	selectDatabaseURL    string
	selectVerbose        bool
)

func init() {
	selectCmd.Flags().StringVarP(&selectProfile, "profile", "p", "", "Path to input CanonicalProfile JSON file (required)")
	selectCmd.Flags().StringVarP(&selectJob, "job", "j", "", "Path to input ParsedJobDescription JSON file (required)")
	selectCmd.Flags().StringVarP(&selectSignals, "signals", "s", "", "Path to JobSelectionSignals JSON file with embeddings (optional)")
	selectCmd.Flags().StringVarP(&selectOutput, "out", "o", "", "Path to output TargetAwareProfile JSON file (required)")
	selectCmd.Flags().StringVarP(&selectConfigPath, "config", "c", "", "Path to config JSON file")
	selectCmd.Flags().Float64Var(&selectMinScore, "min-score", 0, "Alignment score floor for the first selection tier")
	selectCmd.Flags().IntVar(&selectMaxExperiences, "max-experiences", 0, "Maximum experiences to select")
	selectCmd.Flags().IntVar(&selectSkillPoolCap, "skill-pool-cap", 0, "Maximum prioritized skills")
	selectCmd.Flags().StringVar(&selectDatabaseURL, "database-url", "", "PostgreSQL URL to persist the profile and selection run (overrides DATABASE_URL env var)")
	selectCmd.Flags().BoolVarP(&selectVerbose, "verbose", "v", false, "Print selection diagnostics")

	if err := selectCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}
	if err := selectCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := selectCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(selectCmd)
}

func runSelect(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(selectConfigPath, config.Config{
		Profile:        selectProfile,
		Job:            selectJob,
		Signals:        selectSignals,
		MinScore:       selectMinScore,
		MaxExperiences: selectMaxExperiences,
		SkillPoolCap:   selectSkillPoolCap,
		DatabaseURL:    selectDatabaseURL,
		Verbose:        selectVerbose,
	})
	if err != nil {
		return err
	}

	// 1. Load and normalize the profile
	canonical, err := profile.LoadProfile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	// 2. Load the parsed job description
	jobContent, err := os.ReadFile(cfg.Job)
	if err != nil {
		return fmt.Errorf("failed to read job description file %s: %w", cfg.Job, err)
	}

	var jd types.ParsedJobDescription
	if err := json.Unmarshal(jobContent, &jd); err != nil {
		return fmt.Errorf("failed to unmarshal job description JSON: %w", err)
	}
	jd.Normalize()

	// 3. Load embedding signals when provided
	var signals types.JobSelectionSignals
	if cfg.Signals != "" {
		signalsContent, err := os.ReadFile(cfg.Signals)
		if err != nil {
			return fmt.Errorf("failed to read signals file %s: %w", cfg.Signals, err)
		}
		if err := json.Unmarshal(signalsContent, &signals); err != nil {
			return fmt.Errorf("failed to unmarshal signals JSON: %w", err)
		}
	}

	// 4. Run selection
	jobCtx := &types.JobContext{
		Description:    jd,
		RequiredSkills: jd.HardSkills,
	}
	result, err := selection.SelectTargetAwareProfile(canonical, jobCtx, signals, selection.Options{
		MaxExperiences: cfg.MaxExperiences,
		MinScore:       cfg.MinScore,
		SkillPoolCap:   cfg.SkillPoolCap,
	})
	if err != nil {
		return fmt.Errorf("failed to select experiences: %w", err)
	}

	// 5. Persist when a database is configured
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		if err := persistSelectionRun(databaseURL, canonical, jd.Title, result); err != nil {
			return err
		}
	}

	// 6. Write the output artifact
	if err := writeJSONArtifact(selectOutput, result); err != nil {
		return err
	}

	// 7. Validate output against schema (optional - non-fatal)
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "selection_result.schema.json"))
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, selectOutput); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSelection(result)
		printer.PrintFilteredExperiences(result.Diagnostics.FilteredExperiences)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully selected %d of %d experiences to %s\n",
		len(result.Experiences), result.Diagnostics.TotalExperiences, selectOutput)

	return nil
}

func persistSelectionRun(databaseURL string, canonical *types.CanonicalProfile, jobTitle string, result *types.TargetAwareProfile) error {
	ctx := context.Background()
	st, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close()

	profileID, err := st.SaveProfile(ctx, canonical)
	if err != nil {
		return fmt.Errorf("failed to persist profile: %w", err)
	}

	runID, err := st.SaveSelectionRun(ctx, profileID, jobTitle, result)
	if err != nil {
		return fmt.Errorf("failed to persist selection run: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Persisted selection run %s (profile %s)\n", runID, profileID)
	return nil
}

// resolveConfig merges flag values over an optional config file and applies
// built-in defaults; the merged result is validated.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	fileCfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	merged := flags.MergeWithDefaults(fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// writeJSONArtifact marshals v with indentation and writes it to path,
// creating the output directory when needed.
func writeJSONArtifact(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
