// Package core contains the business logic for the Link Preview API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (ResolutionResult)
// - resolver: Bounded fetch, tolerant parse and fallback extraction service
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Resolution never fails the caller: every downstream failure degrades
//   to a null result, and only input validation surfaces as an error
//
// # Usage Example
//
//	import (
//	    "linkpreview-api/core/interfaces"
//	    "linkpreview-api/core/resolver"
//	)
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	svc := resolver.NewService(deps)
//	result := svc.Resolve(ctx, "https://example.com/article")
//	if result.ThumbnailURL != nil {
//	    fmt.Println(*result.ThumbnailURL)
//	}
package core
