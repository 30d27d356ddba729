// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP communication and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with browser identity headers
// - logger/logrus: Structured logger on logrus with optional file rotation
//
// # HTTP Client
//
// The HTTP client performs exactly one attempt per request. Retrying is
// deliberately absent: the resolver runs on a synchronous user-facing path
// where a second attempt against a slow or blocking server only adds
// latency.
//
//	client := standard.NewStandardHTTPClient(10 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.New(logrus.Config{Level: "debug"})
//	logger.Info("Resolving preview", map[string]interface{}{
//	    "url": "https://example.com/article",
//	})
package infrastructure
