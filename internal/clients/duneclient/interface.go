package duneclient

import "context"

type DuneInterface interface {
	GetQueryResults(ctx context.Context, queryID string) ([]map[string]any, error)
}
