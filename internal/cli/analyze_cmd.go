package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/cli/formatter"
	"github.com/spf13/cobra"
)

// analyzeOutput prints v as JSON when asked, otherwise the rendered text.
func analyzeOutput(out io.Writer, asJSON bool, v any, text string) error {
	if asJSON {
		return writeJSON(out, v)
	}
	_, err := fmt.Fprint(out, text)
	return err
}

func requirePositive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("--%s must be greater than zero", name)
	}
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a single analysis check without a session",
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	cmd.AddCommand(
		newAnalyzeComplexityCmd(&asJSON),
		newAnalyzeCapacityCmd(&asJSON),
		newAnalyzeTimelineCmd(&asJSON),
		newAnalyzePrioritizeCmd(&asJSON),
		newAnalyzeStackCmd(&asJSON),
		newAnalyzeReadinessCmd(&asJSON),
	)
	return cmd
}

func newAnalyzeComplexityCmd(asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "complexity <feature>...",
		Short: "Score how hard each feature is to build",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items := make([]analysis.FeatureComplexity, 0, len(args))
			for _, f := range args {
				items = append(items, analysis.FeatureComplexity{Feature: f, Complexity: analysis.AnalyzeComplexity(f)})
			}
			return analyzeOutput(cmd.OutOrStdout(), *asJSON, items, formatter.FormatComplexity(items))
		},
	}
}

func newAnalyzeCapacityCmd(asJSON *bool) *cobra.Command {
	var weeks float64
	var experience experienceValue

	cmd := &cobra.Command{
		Use:   "capacity <feature>...",
		Short: "Check whether the features fit the weeks available",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := analysis.ValidateCapacity(args, weeks, experience.level())
			return analyzeOutput(cmd.OutOrStdout(), *asJSON, c, formatter.FormatCapacity(c))
		},
	}
	cmd.Flags().Float64Var(&weeks, "weeks", 0, "Weeks available")
	cmd.Flags().Var(&experience, "experience", "Experience level: beginner, intermediate or expert")
	_ = cmd.MarkFlagRequired("weeks")
	return cmd
}

func newAnalyzeTimelineCmd(asJSON *bool) *cobra.Command {
	var weeks float64
	var reuse bool

	cmd := &cobra.Command{
		Use:   "timeline <feature>...",
		Short: "Compare a target launch date against a realistic estimate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePositive("weeks", weeks); err != nil {
				return err
			}
			t := analysis.CheckTimelineSanity(analysis.TimelineInput{
				FeatureWeeks:      analysis.FeatureWeeks(args),
				TargetWeeks:       weeks,
				ReuseExistingCode: reuse,
			})
			return analyzeOutput(cmd.OutOrStdout(), *asJSON, t, formatter.FormatTimeline(t))
		},
	}
	cmd.Flags().Float64Var(&weeks, "weeks", 0, "Target weeks until launch")
	cmd.Flags().BoolVar(&reuse, "reuse", false, "You will reuse existing code or a starter template")
	_ = cmd.MarkFlagRequired("weeks")
	return cmd
}

func newAnalyzePrioritizeCmd(asJSON *bool) *cobra.Command {
	var weeks float64
	var goal string

	cmd := &cobra.Command{
		Use:   "prioritize <feature>...",
		Short: "Sort features into must-have, should-have, nice-to-have and defer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePositive("weeks", weeks); err != nil {
				return err
			}
			items := analysis.Prioritize(args, weeks, goal)
			return analyzeOutput(cmd.OutOrStdout(), *asJSON, items, formatter.FormatPriorities(items))
		},
	}
	cmd.Flags().Float64Var(&weeks, "weeks", 0, "Weeks available")
	cmd.Flags().StringVar(&goal, "goal", "", "The MVP goal features are matched against")
	_ = cmd.MarkFlagRequired("weeks")
	return cmd
}

type stackResult struct {
	Overengineering analysis.OverengineeringReport `json:"overengineering"`
	Innovation      analysis.InnovationBudget      `json:"innovation"`
}

func newAnalyzeStackCmd(asJSON *bool) *cobra.Command {
	var users int
	var tech []string

	cmd := &cobra.Command{
		Use:   "stack [feature]...",
		Short: "Look for over-engineering and count innovation tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(tech) == 0 {
				return errors.New("--tech is required")
			}
			r := stackResult{
				Overengineering: analysis.DetectOverengineering(tech, args, users),
				Innovation:      analysis.CountInnovationTokens(tech),
			}
			return analyzeOutput(cmd.OutOrStdout(), *asJSON, r, formatter.FormatStack(r.Overengineering, r.Innovation))
		},
	}
	cmd.Flags().IntVar(&users, "users", 0, "Expected users in the first months")
	cmd.Flags().StringSliceVar(&tech, "tech", nil, "Technologies, comma separated")
	return cmd
}

func newAnalyzeReadinessCmd(asJSON *bool) *cobra.Command {
	var in analysis.ReadinessInput

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Score how ready a plan is to build",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := analysis.ScoreReadiness(in)
			return analyzeOutput(cmd.OutOrStdout(), *asJSON, r, formatter.FormatReadiness(r)+formatter.Verdict(r.Score >= analysis.ReadinessThreshold)+"\n")
		},
	}
	cmd.Flags().IntVar(&in.PainLevel, "pain", 0, "Problem pain level, 1-10")
	cmd.Flags().IntVar(&in.FeatureCount, "features", 0, "Number of core features")
	cmd.Flags().IntVar(&in.KnownTechCount, "tech", 0, "Technologies you already know well")
	cmd.Flags().IntVar(&in.TimelineWeeks, "weeks", 0, "Weeks until launch")
	return cmd
}
