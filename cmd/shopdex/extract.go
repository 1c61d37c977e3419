package main

import (
	"github.com/spf13/cobra"

	"github.com/taoshops/shopdex/internal/api"
	"github.com/taoshops/shopdex/internal/pipeline"
)

var extractNoCache bool

var extractCmd = &cobra.Command{
	Use:   "extract [pdf]",
	Short: "Parse the partner-shop PDF into records",
	Long: `Extract parses the partner-shop PDF and prints the record list.

The source document defaults to pdf_path from configuration; pass a path
to override it. Results come from the cache while it is fresh; use
--no-cache to force a re-parse.

Examples:
  shopdex extract                          # configured document, cached
  shopdex extract data/shops.pdf           # explicit document
  shopdex extract --no-cache -o json       # force re-parse, JSON output`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices()
		if err != nil {
			return err
		}

		pdfPath := svcs.ConfigMgr.Get().PDFPath
		if len(args) == 1 {
			pdfPath = args[0]
		}

		res, err := svcs.Loader.Load(cmd.Context(), pipeline.Request{
			PDFPath:   pdfPath,
			SkipCache: extractNoCache,
			Logger:    svcs.Logger,
			Progress: func(stage string) {
				svcs.Logger.Info("stage started", "stage", stage)
			},
		})
		if err != nil {
			return err
		}

		svcs.Logger.Info("extract finished",
			"records", len(res.Records), "from_cache", res.FromCache)
		return api.Output(res.Records)
	},
}

func init() {
	extractCmd.Flags().BoolVar(&extractNoCache, "no-cache", false, "Bypass the cache and re-parse")

	rootCmd.AddCommand(extractCmd)
}
