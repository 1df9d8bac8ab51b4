package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/metaads-client/internal/constants"
	"github.com/fivetwenty-io/metaads-client/pkg/ads"
)

// NewInsightsCommand creates the insights command.
func NewInsightsCommand() *cobra.Command {
	var (
		level            string
		datePreset       string
		since            string
		until            string
		timeIncrement    string
		breakdowns       []string
		actionBreakdowns []string
		filtering        string
	)

	cmd := &cobra.Command{
		Use:     "insights [OBJECT_ID]",
		Aliases: []string{"insight", "stats"},
		Short:   "Query performance insights",
		Long: "Query insights for an ad account, campaign, ad set or ad. Without an argument " +
			"the configured account is used. --since and --until take precedence over --date-preset.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (since == "") != (until == "") {
				return constants.ErrTimeRangeIncomplete
			}

			filters, err := jsonFlag(cmd, "filtering")
			if err != nil {
				return err
			}

			request := &ads.InsightsRequest{
				ListOptions:      listOptions(cmd),
				Level:            level,
				DatePreset:       datePreset,
				TimeIncrement:    timeIncrement,
				Breakdowns:       breakdowns,
				ActionBreakdowns: actionBreakdowns,
			}

			if len(args) == 1 {
				request.ObjectID = args[0]
			}

			if since != "" {
				request.TimeRange = &ads.TimeRange{Since: since, Until: until}
			}

			if filters != nil {
				request.Filtering, err = parseFilters(filters)
				if err != nil {
					return err
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			insights, err := client.Insights().Get(commandContext(cmd), request)
			if err != nil {
				return fmt.Errorf("failed to get insights: %w", err)
			}

			return writeResult(cmd, insights)
		},
	}

	cmd.Flags().StringVar(&level, "level", "", "aggregation level: account, campaign, adset or ad")
	cmd.Flags().StringVar(&datePreset, "date-preset", "", "date preset, e.g. last_7d")
	cmd.Flags().StringVar(&since, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&until, "until", "", "end date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&timeIncrement, "time-increment", "", "time increment, e.g. 1 or monthly")
	cmd.Flags().StringSliceVar(&breakdowns, "breakdowns", nil, "breakdowns, e.g. age,gender")
	cmd.Flags().StringSliceVar(&actionBreakdowns, "action-breakdowns", nil, "action breakdowns")
	cmd.Flags().StringVar(&filtering, "filtering", "", `filters as JSON, e.g. [{"field":"spend","operator":"GREATER_THAN","value":0}]`)
	addListFlags(cmd)

	return cmd
}
