package graphql

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lightlink-network/dai-tracker/models"
	gql "github.com/machinebox/graphql"
)

// TransfersQuery is the one query the tracker issues
const TransfersQuery = `
	query transfers($first: Int!) {
		transfers(first: $first) {
			id
			wad
			src
			dst
		}
	}
`

// DefaultFirst is the number of transfers requested
const DefaultFirst = 100

const defaultTimeout = 30 * time.Second

type Client struct {
	client *gql.Client
	logger *slog.Logger
	Opts   *ClientOpts
}

type ClientOpts struct {
	Endpoint   string
	Logger     *slog.Logger
	Timeout    time.Duration
	HTTPClient *http.Client
}

// NewClient returns a client for the subgraph at opts.Endpoint. No request
// is made until GetTransfers is called.
func NewClient(opts ClientOpts) (*Client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("graphql endpoint is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	client := gql.NewClient(opts.Endpoint, gql.WithHTTPClient(opts.HTTPClient))
	client.Log = func(s string) {
		opts.Logger.Debug(s)
	}

	return &Client{
		client: client,
		logger: opts.Logger,
		Opts:   &opts,
	}, nil
}

type transfersResponse struct {
	Transfers []models.Transfer `json:"transfers"`
}

// GetTransfers fetches up to first transfers from the subgraph
func (c *Client) GetTransfers(ctx context.Context, first int) ([]models.Transfer, error) {
	if first <= 0 {
		first = DefaultFirst
	}

	req := gql.NewRequest(TransfersQuery)
	req.Var("first", first)
	req.Header.Set("Accept", "application/json")

	var resp transfersResponse
	if err := c.client.Run(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}

	c.logger.Info("fetched transfers", "count", len(resp.Transfers), "endpoint", c.Opts.Endpoint)

	return resp.Transfers, nil
}
