// Package environment provides simple helpers to propagate the current
// application environment (development, staging, production, etc.) through
// context.Context and structured logs.
//
// It defines the typed string alias Environment with predefined constants
// Development, Staging and Production. These values can be attached to a
// context using WithContext, extracted with FromContext and queried with the
// convenience predicates IsDevelopment, IsStaging and IsProduction.
//
// For structured logging the package provides LoggerExtractor which returns a
// slog.Attr containing the environment value so it can be seamlessly injected
// into slog based loggers.
//
// # Usage
//
// Import the package:
//
//	import "github.com/streamkit/rxstream/pkg/environment"
//
// Attach the environment to a context:
//
//	ctx := environment.WithContext(context.Background(), "production")
//
// Retrieve the environment from a context:
//
//	env := environment.FromContext(ctx)
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// Add the environment to a slog logger:
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// # Error Handling
//
// None of the helpers return errors. Missing values simply result in the
// zero value ("").
//
// See the function-level documentation for further details.
package environment
