package cmd

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"openvid/config"
	"openvid/models"
	"openvid/services"
	"openvid/sources"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("sources", "s", "", "逗号分隔的数据源 (peertube,archive,dailymotion,wikimedia,nasa)")
	searchCmd.Flags().String("sort", string(models.SortRelevance), "排序方式 (relevance, date, views)")
	searchCmd.Flags().String("duration", string(models.DurationAll), "时长筛选 (all, short, medium, long)")
	searchCmd.Flags().String("date", string(models.DateAll), "发布时间筛选 (all, today, week, month, year)")
	searchCmd.Flags().Bool("compact", false, "输出单行JSON")
}

// searchCmd CLI模式：直接执行一次聚合搜索并输出JSON
var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "在命令行执行一次聚合搜索",
	Example: "  openvid search \"space shuttle\" --sources archive,nasa --sort date",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			handleErr(errors.New(`query is required`))
		}

		req := models.SearchRequest{
			Query:    query,
			Sources:  models.ParseSources(lo.Must(cmd.Flags().GetString("sources"))),
			Sort:     models.ParseSortMode(lo.Must(cmd.Flags().GetString("sort"))),
			Duration: models.ParseDurationBucket(lo.Must(cmd.Flags().GetString("duration"))),
			Date:     models.ParseDateBucket(lo.Must(cmd.Flags().GetString("date"))),
		}

		searchService := services.NewSearchService(
			sources.Defaults(nil),
			services.WithTimeout(config.AppConfig.SearchTimeout),
		)
		resp, err := searchService.Search(cmd.Context(), req)
		handleErr(err)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		if !lo.Must(cmd.Flags().GetBool("compact")) {
			enc.SetIndent("", "  ")
		}
		handleErr(enc.Encode(resp))
	},
}
