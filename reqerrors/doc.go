// Package reqerrors provides structured error types for reqgen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// The extraction core itself never produces errors: malformed specification
// content degrades to defaults and omitted fields. Errors in this package
// originate in the collaborator layers around the core, namely document
// loading and CLI configuration.
package reqerrors
