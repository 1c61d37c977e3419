package endpoints

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taoshops/shopdex/internal/api"
	"github.com/taoshops/shopdex/internal/directory"
	"github.com/taoshops/shopdex/internal/pipeline"
	"github.com/taoshops/shopdex/internal/svcctx"
)

// ShopsResponse is the list response.
type ShopsResponse struct {
	Count int                    `json:"count"`
	Shops []directory.ShopRecord `json:"shops"`
}

// RefreshResponse reports a forced re-parse.
type RefreshResponse struct {
	Records int    `json:"records"`
	Pages   int    `json:"pages"`
	RunID   string `json:"run_id"`
}

// loadRecords runs the loader with the configured source document.
func loadRecords(r *http.Request, skipCache bool) (*pipeline.Result, error) {
	ctx := r.Context()
	loader := svcctx.LoaderFrom(ctx)
	cfgMgr := svcctx.ConfigFrom(ctx)
	if loader == nil || cfgMgr == nil {
		return nil, fmt.Errorf("server not fully initialized")
	}

	return loader.Load(ctx, pipeline.Request{
		PDFPath:   cfgMgr.Get().PDFPath,
		SkipCache: skipCache,
		Logger:    svcctx.LoggerFrom(ctx),
	})
}

// ShopsListEndpoint handles GET /api/shops.
// Optional query params: county (exact region match) and q (substring match
// on name and offer). These are plain string filters for the browsing UI,
// not text understanding.
type ShopsListEndpoint struct{}

var _ api.Endpoint = (*ShopsListEndpoint)(nil)

func (e *ShopsListEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/shops", e.handler
}

func (e *ShopsListEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	res, err := loadRecords(r, false)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("load failed: %v", err))
		return
	}

	records := filterRecords(res.Records, r.URL.Query().Get("county"), r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, ShopsResponse{Count: len(records), Shops: records})
}

func filterRecords(records []directory.ShopRecord, county, query string) []directory.ShopRecord {
	if county == "" && query == "" {
		return records
	}
	filtered := make([]directory.ShopRecord, 0, len(records))
	for _, rec := range records {
		if county != "" && rec.County != county {
			continue
		}
		if query != "" &&
			!strings.Contains(rec.Name, query) &&
			!strings.Contains(rec.Offer, query) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func (e *ShopsListEndpoint) Command(getServerURL func() string) *cobra.Command {
	var county, query string
	cmd := &cobra.Command{
		Use:   "shops",
		Short: "List shop records",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			path := "/api/shops"
			params := make([]string, 0, 2)
			if county != "" {
				params = append(params, "county="+county)
			}
			if query != "" {
				params = append(params, "q="+query)
			}
			if len(params) > 0 {
				path += "?" + strings.Join(params, "&")
			}
			var resp ShopsResponse
			if err := client.Get(cmd.Context(), path, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&county, "county", "", "Filter by exact county name")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by substring on name or offer")
	return cmd
}

// ShopGetEndpoint handles GET /api/shops/{id}.
type ShopGetEndpoint struct{}

var _ api.Endpoint = (*ShopGetEndpoint)(nil)

func (e *ShopGetEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/shops/{id}", e.handler
}

func (e *ShopGetEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	res, err := loadRecords(r, false)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("load failed: %v", err))
		return
	}

	for _, rec := range res.Records {
		if rec.ID == id {
			writeJSON(w, http.StatusOK, rec)
			return
		}
	}
	writeError(w, http.StatusNotFound, fmt.Sprintf("no shop with id %d", id))
}

func (e *ShopGetEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "shop <id>",
		Short: "Get one shop record by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var rec directory.ShopRecord
			if err := client.Get(cmd.Context(), "/api/shops/"+args[0], &rec); err != nil {
				return err
			}
			return api.Output(rec)
		},
	}
}

// ShopsRefreshEndpoint handles POST /api/shops/refresh.
// It bypasses the cache and re-runs the full pipeline.
type ShopsRefreshEndpoint struct{}

var _ api.Endpoint = (*ShopsRefreshEndpoint)(nil)

func (e *ShopsRefreshEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/shops/refresh", e.handler
}

func (e *ShopsRefreshEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	res, err := loadRecords(r, true)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("refresh failed: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, RefreshResponse{
		Records: len(res.Records),
		Pages:   res.Pages,
		RunID:   res.RunID,
	})
}

func (e *ShopsRefreshEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-parse the source document, bypassing the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp RefreshResponse
			if err := client.Post(cmd.Context(), "/api/shops/refresh", nil, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
