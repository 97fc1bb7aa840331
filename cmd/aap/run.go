package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/llm"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/orchestrator"
	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/store"
)

var synthesize bool

func init() {
	runCmd.Flags().BoolVar(&synthesize, "synthesize", false, "call the synthesis model on the decision packet")
}

var runCmd = &cobra.Command{
	Use:   "run <request text>",
	Short: "Classify a request and execute its workflow plan",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		st, err := store.Open()
		if err != nil {
			return err
		}
		defer st.Close()

		opts := []orchestrator.Option{orchestrator.WithLogger(logger)}
		if synthesize || cfg.Synthesis.Enabled {
			synth, err := llm.NewGoogleSynthesizer(ctx,
				cfg.Synthesis.APIKey,
				cfg.Synthesis.Model,
				llm.NewCache(cfg.Synthesis.CachePath),
				llm.WithSynthesizerLogger(logger),
			)
			if err != nil {
				return err
			}
			opts = append(opts, orchestrator.WithSynthesizer(synth))
		}

		runner := orchestrator.NewRunner(st, st, st, nil, opts...)
		result, err := runner.Run(ctx, text)

		fmt.Printf("Workflow:   %s\n", result.Classification.Workflow)
		fmt.Printf("Confidence: %.2f\n", result.Classification.Confidence)
		if len(result.Classification.MissingFields) > 0 {
			fmt.Printf("Missing:    %s\n", strings.Join(result.Classification.MissingFields, ", "))
		}

		if errors.Is(err, orchestrator.ErrWorkflowNotSupported) {
			fmt.Println("No plan defined for this workflow yet.")
			return nil
		}

		if result.Plan != nil {
			fmt.Println("\nPlan steps:")
			for _, s := range result.Plan.Steps {
				fmt.Printf("  %s  %s.%s\n", s.ID, s.Owner, s.Action)
			}
		}

		if result.State != nil {
			fmt.Println("\nExecution trace:")
			for _, e := range result.State.Events {
				fmt.Printf("  %s %-5s [%s] %s\n",
					e.Timestamp.Format("15:04:05.000"), e.Level, e.StepID, e.Message)
			}
		}

		if result.DecisionPacket != nil {
			fmt.Println("\nDecision packet:")
			printJSON(result.DecisionPacket)
		}

		if result.Memo != nil {
			if result.MemoCached {
				fmt.Println("\nDecision memo (cached):")
			} else {
				fmt.Println("\nDecision memo:")
			}
			printJSON(result.Memo)
		}

		return err
	},
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("  (not serializable: %v)\n", err)
		return
	}
	fmt.Println(string(data))
}
