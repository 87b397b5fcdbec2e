package subgraphclient

import (
	"encoding/json"
	"errors"
	"strings"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLErrorEntry struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage     `json:"data"`
	Errors []graphQLErrorEntry `json:"errors"`
}

// GraphQLError is returned when the response body is well-formed but carries
// a GraphQL-level errors array.
type GraphQLError struct {
	Messages []string
}

func (e *GraphQLError) Error() string {
	return "graphql errors: " + strings.Join(e.Messages, "; ")
}

func IsGraphQLError(err error) bool {
	var gqlErr *GraphQLError
	return errors.As(err, &gqlErr)
}

// rawProject carries the union of project fields across the two subgraph
// schema versions. There is no version tag upstream, which shape applies is
// detected from which fields are present.
type rawProject struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// v3 shape
	Admin                          string  `json:"admin,omitempty"`
	TotalUsers                     *string `json:"totalUsers,omitempty"`
	MinimalDeposit                 string  `json:"minimalDeposit,omitempty"`
	WithdrawLockPeriodAfterDeposit string  `json:"withdrawLockPeriodAfterDeposit,omitempty"`

	// v4 shape
	Owner                        string  `json:"owner,omitempty"`
	TotalStakers                 *string `json:"totalStakers,omitempty"`
	MinStake                     string  `json:"minStake,omitempty"`
	WithdrawLockPeriodAfterStake string  `json:"withdrawLockPeriodAfterStake,omitempty"`

	// shared
	TotalStaked string `json:"totalStaked,omitempty"`
	StartsAt    string `json:"startsAt,omitempty"`
}

// rawStaker is the union of staking position fields across schema versions.
type rawStaker struct {
	Address   string `json:"address"`
	Staked    string `json:"staked"`
	LastStake string `json:"lastStake,omitempty"`
	// v3 exposes the lock end directly, v4 derives it from lastStake plus
	// the subnet's lock period.
	ClaimLockEnd string `json:"claimLockEnd,omitempty"`

	BuildersProject *rawProject `json:"buildersProject,omitempty"`
	BuilderSubnet   *rawProject `json:"builderSubnet,omitempty"`
}

type projectsData struct {
	BuildersProjects []rawProject `json:"buildersProjects"`
	BuilderSubnets   []rawProject `json:"builderSubnets"`
}

type stakersData struct {
	BuildersUsers []rawStaker `json:"buildersUsers"`
	BuilderUsers  []rawStaker `json:"builderUsers"`
}
