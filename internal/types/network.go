package types

import "fmt"

// Enum values for supported networks
type Network string

const (
	NetworkArbitrum Network = "arbitrum"
	NetworkBase     Network = "base"
)

func (n Network) String() string {
	return string(n)
}

// Networks returns every network the service can query, in stable order.
func Networks() []Network {
	return []Network{NetworkArbitrum, NetworkBase}
}

func ParseNetwork(s string) (Network, error) {
	switch Network(s) {
	case NetworkArbitrum:
		return NetworkArbitrum, nil
	case NetworkBase:
		return NetworkBase, nil
	default:
		return "", fmt.Errorf("unknown network %q", s)
	}
}
