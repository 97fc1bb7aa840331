package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnirudhBhagat/AI-Automation-Platform/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <request text>",
	Short: "Classify a request into a workflow type",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		result := classify.Classify(text)

		fmt.Printf("Workflow:   %s\n", result.Workflow)
		fmt.Printf("Confidence: %.2f\n", result.Confidence)
		for _, reason := range result.Reasons {
			fmt.Printf("Reason:     %s\n", reason)
		}
		if len(result.MissingFields) > 0 {
			fmt.Printf("Missing:    %s\n", strings.Join(result.MissingFields, ", "))
		}
		if len(result.Entities) > 0 {
			fmt.Println("Entities:")
			for _, key := range entityOrder {
				if v, ok := result.Entities[key]; ok {
					fmt.Printf("  %s = %s\n", key, v)
				}
			}
		}
		return nil
	},
}

// entityOrder fixes the display order of extracted entities.
var entityOrder = []string{
	classify.EntityCustomerName,
	classify.EntityDealAmountUSD,
	classify.EntityTermMonths,
	classify.EntityDiscountPct,
	classify.EntityPaymentTerms,
}
