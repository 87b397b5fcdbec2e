package subgraphclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/rs/zerolog/log"

	"github.com/morlord/builders-service/internal/clients/client"
	"github.com/morlord/builders-service/internal/config"
	"github.com/morlord/builders-service/internal/types"
)

const builderSubnetsQuery = `query {
  builderSubnets(first: 1000, orderBy: totalStaked, orderDirection: desc) {
    id
    name
    owner
    totalStaked
    totalStakers
    minStake
    withdrawLockPeriodAfterStake
    startsAt
  }
}`

const buildersProjectsQuery = `query {
  buildersProjects(first: 1000, orderBy: totalStaked, orderDirection: desc) {
    id
    name
    admin
    totalStaked
    totalUsers
    minimalDeposit
    withdrawLockPeriodAfterDeposit
    startsAt
  }
}`

const builderUsersQuery = `query ($subnet: String!) {
  builderUsers(first: 1000, where: { builderSubnet: $subnet }) {
    address
    staked
    lastStake
    builderSubnet {
      id
      owner
      withdrawLockPeriodAfterStake
    }
  }
}`

const buildersUsersQuery = `query ($subnet: String!) {
  buildersUsers(first: 1000, where: { buildersProject: $subnet }) {
    address
    staked
    lastStake
    claimLockEnd
    buildersProject {
      id
      admin
      withdrawLockPeriodAfterDeposit
    }
  }
}`

type Client struct {
	httpClient *http.Client
	cfg        *config.SubgraphConfig
}

func NewClient(cfg *config.SubgraphConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

// endpoint adapts a single network's URL to the shared request helper.
type endpoint struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func (e *endpoint) GetBaseURL() string {
	return e.baseURL
}

func (e *endpoint) GetDefaultRequestTimeout() time.Duration {
	return e.timeout
}

func (e *endpoint) GetHttpClient() *http.Client {
	return e.httpClient
}

func (c *Client) endpointFor(network types.Network) (*endpoint, error) {
	url := c.cfg.Endpoint(network)
	if url == "" {
		return nil, fmt.Errorf("no subgraph endpoint configured for network %s", network)
	}

	return &endpoint{
		baseURL:    url,
		timeout:    c.cfg.Timeout,
		httpClient: c.httpClient,
	}, nil
}

func (c *Client) execQuery(
	ctx context.Context,
	network types.Network,
	query string,
	vars map[string]any,
) (json.RawMessage, error) {
	ep, err := c.endpointFor(network)
	if err != nil {
		return nil, err
	}

	req := graphQLRequest{Query: query, Variables: vars}
	opts := &client.HttpClientOptions{
		TemplatePath: "/subgraph/" + network.String(),
	}

	resp, err := client.SendRequest[graphQLRequest, graphQLResponse](ctx, ep, http.MethodPost, opts, &req)
	if err != nil {
		return nil, err
	}

	if len(resp.Errors) > 0 {
		messages := make([]string, len(resp.Errors))
		for i, e := range resp.Errors {
			messages[i] = e.Message
		}
		return nil, &GraphQLError{Messages: messages}
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("subgraph %s returned no data", network)
	}

	return resp.Data, nil
}

// GetSubnets fetches every builders project/subnet on the given network in
// canonical form. The v4 entity set is tried first, deployments still on the
// v3 schema reject it with a GraphQL error and get the v3 query instead.
func (c *Client) GetSubnets(ctx context.Context, network types.Network) ([]types.Subnet, error) {
	callForSubnets := func() ([]types.Subnet, error) {
		data, err := c.execQuery(ctx, network, builderSubnetsQuery, nil)
		if err != nil && IsGraphQLError(err) {
			log.Ctx(ctx).Debug().
				Str("network", network.String()).
				Msg("v4 entities rejected, falling back to v3 query")
			data, err = c.execQuery(ctx, network, buildersProjectsQuery, nil)
		}
		if err != nil {
			return nil, err
		}

		var decoded projectsData
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("failed to decode projects data: %w", err)
		}

		raws := make([]rawProject, 0, len(decoded.BuilderSubnets)+len(decoded.BuildersProjects))
		raws = append(raws, decoded.BuilderSubnets...)
		raws = append(raws, decoded.BuildersProjects...)

		subnets := make([]types.Subnet, 0, len(raws))
		for i := range raws {
			subnets = append(subnets, normalizeProject(&raws[i]))
		}
		return subnets, nil
	}

	result, err := clientCallWithRetry(ctx, callForSubnets, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subnets for %s: %w", network, err)
	}
	return result, nil
}

// GetStakers fetches the staking positions of one subnet in canonical form.
func (c *Client) GetStakers(ctx context.Context, network types.Network, subnetID string) ([]types.Staker, error) {
	vars := map[string]any{"subnet": subnetID}

	callForStakers := func() ([]types.Staker, error) {
		data, err := c.execQuery(ctx, network, builderUsersQuery, vars)
		if err != nil && IsGraphQLError(err) {
			data, err = c.execQuery(ctx, network, buildersUsersQuery, vars)
		}
		if err != nil {
			return nil, err
		}

		var decoded stakersData
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("failed to decode stakers data: %w", err)
		}

		raws := make([]rawStaker, 0, len(decoded.BuilderUsers)+len(decoded.BuildersUsers))
		raws = append(raws, decoded.BuilderUsers...)
		raws = append(raws, decoded.BuildersUsers...)

		stakers := make([]types.Staker, 0, len(raws))
		for i := range raws {
			stakers = append(stakers, normalizeStaker(&raws[i]))
		}
		return stakers, nil
	}

	result, err := clientCallWithRetry(ctx, callForStakers, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stakers for %s/%s: %w", network, subnetID, err)
	}
	return result, nil
}

func clientCallWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.SubgraphConfig,
) (T, error) {
	result, err := retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(cfg.MaxRetryTimes),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			// Only retry on rate limit errors (429)
			return err != nil && strings.Contains(err.Error(), "rate limit exceeded")
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.MaxRetryTimes).
				Err(err).
				Msg("rate limit exceeded, retrying with exponential backoff")
		}))
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
