package extract

import (
	"context"
	"strings"
)

// tier is one alternative strategy in an ordered fallback chain.
type tier struct {
	name string
	run  func(ctx context.Context) (string, error)
}

// runTiers tries each tier in order and short-circuits on the first one that
// returns non-empty output without error. If every tier fails or yields empty
// output, it returns a FallbackExhaustedError naming the tiers tried.
func runTiers(ctx context.Context, tiers []tier) (string, error) {
	names := make([]string, 0, len(tiers))
	errs := make([]error, 0, len(tiers))

	for _, t := range tiers {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		out, err := t.run(ctx)
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}

		names = append(names, t.name)
		errs = append(errs, err)
	}

	return "", &FallbackExhaustedError{Tiers: names, Errs: errs}
}
