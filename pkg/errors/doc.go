// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "failed to query state daemon",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "peer": peer.Addr,
//	        "node": peer.ID,
//	    },
//	)
package errors
