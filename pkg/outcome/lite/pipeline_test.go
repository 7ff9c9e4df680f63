package lite_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/core"
	"github.com/ib-77/outcome/pkg/outcome/lite"
	"github.com/ib-77/outcome/pkg/outcome/mass"
)

func TestURLPipeline(t *testing.T) {
	urls := []string{
		"https://www.example.com",
		"https://www.test.org",
		"https://go.dev",
		"https://unreachable.invalid",
		"invalid-url",
		"ftp://invalid-protocol.com",
	}

	results := processURLs(urls)

	invalid := 0
	for _, res := range results {
		if res == "invalid" {
			invalid++
			continue
		}
		assert.True(t, strings.HasPrefix(res, "title length: "), "unexpected result: %s", res)
	}

	assert.Equal(t, len(urls), len(results))

	// two malformed URLs plus one panicking fetch
	assert.Equal(t, 3, invalid)
}

func processURLs(urls []string) []string {
	ctx := context.Background()

	handlers := mass.MatchHandlers[int, string]{
		OnSuccess: func(ctx context.Context, r int) string {
			return fmt.Sprintf("title length: %d", r)
		},
		OnFailure: func(ctx context.Context, err error) string {
			return "invalid"
		},
	}

	return core.FromChanMany(ctx,
		lite.Finally(ctx,
			lite.Turnout(ctx,
				lite.Turnout(ctx,
					lite.Run(ctx,
						core.ToChanManyResults(ctx, urls),
						lite.Validate(validateURL), 2),
					lite.Capture(fetchTitle), 2),
				lite.Chain(titleLength), 2),
			handlers))
}

func validateURL(_ context.Context, url string) (bool, string) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return false, "url must start with http:// or https://"
	}
	return true, ""
}

// fetchTitle stands in for a real fetch; the .invalid host blows up to
// prove the capture stage holds the line.
func fetchTitle(_ context.Context, url string) (string, error) {
	if strings.HasSuffix(url, ".invalid") {
		panic("no route to " + url)
	}
	return "Mock Page Title for " + url, nil
}

func titleLength(_ context.Context, title string) outcome.Result[int] {
	return outcome.Success(len(title))
}
