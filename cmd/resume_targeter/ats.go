package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-targeter/internal/ats"
	"github.com/jonathan/resume-targeter/internal/cache"
	"github.com/jonathan/resume-targeter/internal/config"
	"github.com/jonathan/resume-targeter/internal/embedding"
	"github.com/jonathan/resume-targeter/internal/ingest"
	"github.com/jonathan/resume-targeter/internal/observability"
	"github.com/jonathan/resume-targeter/internal/profile"
	"github.com/jonathan/resume-targeter/internal/schemas"
	"github.com/jonathan/resume-targeter/internal/types"
	"github.com/spf13/cobra"
)

var atsScoreCmd = &cobra.Command{
	Use:   "ats-score",
	Short: "Score a resume against a prioritized JD keyword list",
	Long:  "Matches a resume (plain text or rendered HTML) against critical, important, and nice-to-have job description keywords and produces a weighted ATS score with gap suggestions. With an API key, missing keywords get a semantic second pass via embeddings.",
	RunE:  runAtsScore,
}

var (
	atsResume     string
	atsKeywords   string
	atsProfile    string
	atsOutput     string
	atsConfigPath string
	atsAPIKey     string
	atsVerbose    bool
)

// embeddingCacheSize bounds the phrase/term vector cache for one invocation.
const embeddingCacheSize = 512

func init() {
	atsScoreCmd.Flags().StringVarP(&atsResume, "resume", "r", "", "Path to resume text or HTML file (required)")
	atsScoreCmd.Flags().StringVarP(&atsKeywords, "keywords", "k", "", "Path to JD keyword list JSON file (required)")
	atsScoreCmd.Flags().StringVarP(&atsProfile, "profile", "p", "", "Path to CanonicalProfile JSON for gap verification (optional)")
	atsScoreCmd.Flags().StringVarP(&atsOutput, "out", "o", "", "Path to output AtsScoreResult JSON file (required)")
	atsScoreCmd.Flags().StringVarP(&atsConfigPath, "config", "c", "", "Path to config JSON file")
	atsScoreCmd.Flags().StringVar(&atsAPIKey, "api-key", "", "Gemini API key for the semantic pass (overrides GEMINI_API_KEY env var)")
	atsScoreCmd.Flags().BoolVarP(&atsVerbose, "verbose", "v", false, "Print the score report")

	if err := atsScoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := atsScoreCmd.MarkFlagRequired("keywords"); err != nil {
		panic(fmt.Sprintf("failed to mark keywords flag as required: %v", err))
	}
	if err := atsScoreCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(atsScoreCmd)
}

func runAtsScore(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(atsConfigPath, config.Config{
		Resume:   atsResume,
		Keywords: atsKeywords,
		Profile:  atsProfile,
		APIKey:   atsAPIKey,
		Verbose:  atsVerbose,
	})
	if err != nil {
		return err
	}

	// 1. Read the resume, converting HTML to plain text if needed
	resumeText, err := ingest.ReadResume(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	// 2. Load the keyword list
	keywordContent, err := os.ReadFile(cfg.Keywords)
	if err != nil {
		return fmt.Errorf("failed to read keywords file %s: %w", cfg.Keywords, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "jd_keywords.schema.json")); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, cfg.Keywords); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Keyword list validation failed: %v\n", err)
		}
	}

	var jdKeywords []types.JdKeyword
	if err := json.Unmarshal(keywordContent, &jdKeywords); err != nil {
		return fmt.Errorf("failed to unmarshal keywords JSON: %w", err)
	}
	if err := types.ValidateKeywords(jdKeywords); err != nil {
		return fmt.Errorf("invalid keyword list: %w", err)
	}

	// 3. Load the skill pool for gap verification when a profile is given
	var skillPool []string
	if cfg.Profile != "" {
		canonical, err := profile.LoadProfile(cfg.Profile)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		for _, skill := range canonical.Skills {
			skillPool = append(skillPool, skill.DisplayLabel())
		}
	}

	// 4. Build the embedder for the semantic pass when a key is available
	ctx := context.Background()
	var embedder embedding.TextEmbedder
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		gemini, err := embedding.NewGeminiEmbedder(ctx, apiKey, "")
		if err != nil {
			return fmt.Errorf("failed to create embedder: %w", err)
		}
		defer gemini.Close()
		embedder = embedding.NewCachedEmbedder(gemini, cache.NewMemory(embeddingCacheSize))
	}

	// 5. Score
	result := ats.ScoreResume(ctx, resumeText, jdKeywords, skillPool, embedder, ats.UpgradeConfig{
		SemanticThreshold: cfg.SemanticThreshold,
		PartialThreshold:  cfg.PartialThreshold,
	})

	// 6. Write the output artifact
	if err := writeJSONArtifact(atsOutput, result); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintAtsReport(&result)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully scored %d keywords to %s (overall %.1f, %s)\n",
		len(result.Matches), atsOutput, result.Overall, result.Interpretation)

	return nil
}
