package subgraphclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morlord/builders-service/internal/config"
	"github.com/morlord/builders-service/internal/observability/metrics"
	"github.com/morlord/builders-service/internal/types"
)

func testSubgraphConfig(url string) *config.SubgraphConfig {
	return &config.SubgraphConfig{
		Endpoints: map[string]string{
			"arbitrum": url,
		},
		Timeout:       5 * time.Second,
		MaxRetryTimes: 3,
		RetryInterval: 10 * time.Millisecond,
	}
}

func TestGetSubnets(t *testing.T) {
	metrics.Init(19098)
	ctx := context.Background()

	t.Run("v4 schema", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req graphQLRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Contains(t, req.Query, "builderSubnets")

			w.Write([]byte(`{"data":{"builderSubnets":[
				{"id":"0x01","name":"Alpha","owner":"0xAA00000000000000000000000000000000000000",
				 "totalStaked":"3000000000000000000","totalStakers":"3",
				 "minStake":"1000000000000000000","withdrawLockPeriodAfterStake":"604800","startsAt":"1700000000"}
			]}}`))
		}))
		defer server.Close()

		subnets, err := NewClient(testSubgraphConfig(server.URL)).GetSubnets(ctx, types.NetworkArbitrum)
		require.NoError(t, err)
		require.Len(t, subnets, 1)
		assert.Equal(t, "Alpha", subnets[0].Name)
		assert.Equal(t, uint64(3), subnets[0].TotalStakers)
		assert.Equal(t, "0xaa00000000000000000000000000000000000000", subnets[0].Admin)
	})

	t.Run("falls back to v3 schema", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req graphQLRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			if strings.Contains(req.Query, "builderSubnets") {
				w.Write([]byte(`{"errors":[{"message":"Type Query has no field builderSubnets"}]}`))
				return
			}
			w.Write([]byte(`{"data":{"buildersProjects":[
				{"id":"0x02","name":"Beta","admin":"0xBB00000000000000000000000000000000000000",
				 "totalStaked":"1000000000000000000","totalUsers":"1",
				 "minimalDeposit":"0","withdrawLockPeriodAfterDeposit":"86400","startsAt":"1690000000"}
			]}}`))
		}))
		defer server.Close()

		subnets, err := NewClient(testSubgraphConfig(server.URL)).GetSubnets(ctx, types.NetworkArbitrum)
		require.NoError(t, err)
		require.Len(t, subnets, 1)
		assert.Equal(t, "Beta", subnets[0].Name)
		assert.Equal(t, uint64(86400), subnets[0].LockPeriodSeconds)
	})

	t.Run("graphql errors on both schemas surface", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"errors":[{"message":"indexer is down"}]}`))
		}))
		defer server.Close()

		_, err := NewClient(testSubgraphConfig(server.URL)).GetSubnets(ctx, types.NetworkArbitrum)
		require.Error(t, err)
		assert.True(t, IsGraphQLError(err))
	})

	t.Run("non-2xx surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := NewClient(testSubgraphConfig(server.URL)).GetSubnets(ctx, types.NetworkArbitrum)
		assert.Error(t, err)
	})

	t.Run("malformed body surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data": not json`))
		}))
		defer server.Close()

		_, err := NewClient(testSubgraphConfig(server.URL)).GetSubnets(ctx, types.NetworkArbitrum)
		assert.Error(t, err)
	})

	t.Run("retries on rate limit", func(t *testing.T) {
		requestCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
			if requestCount <= 2 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Write([]byte(`{"data":{"builderSubnets":[]}}`))
		}))
		defer server.Close()

		subnets, err := NewClient(testSubgraphConfig(server.URL)).GetSubnets(ctx, types.NetworkArbitrum)
		require.NoError(t, err)
		assert.Empty(t, subnets)
		assert.Equal(t, 3, requestCount)
	})

	t.Run("unconfigured network", func(t *testing.T) {
		_, err := NewClient(testSubgraphConfig("http://localhost:1")).GetSubnets(ctx, types.NetworkBase)
		assert.Error(t, err)
	})
}

func TestGetStakers(t *testing.T) {
	metrics.Init(19098)
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "0x01", req.Variables["subnet"])

		w.Write([]byte(`{"data":{"builderUsers":[
			{"address":"0xAA00000000000000000000000000000000000000","staked":"1000000000000000000",
			 "lastStake":"1700000000",
			 "builderSubnet":{"id":"0x01","owner":"0xcc00000000000000000000000000000000000000","withdrawLockPeriodAfterStake":"100"}}
		]}}`))
	}))
	defer server.Close()

	stakers, err := NewClient(testSubgraphConfig(server.URL)).GetStakers(ctx, types.NetworkArbitrum, "0x01")
	require.NoError(t, err)
	require.Len(t, stakers, 1)
	assert.Equal(t, uint64(1700000100), stakers[0].ClaimLockEnd)
	assert.Equal(t, "0x01", stakers[0].SubnetID)
}
