// Package registry holds the remote-callable tools of the server and
// dispatches tools/call invocations to them.
//
// Each tool carries a JSON schema inferred from its Go input type. Arguments
// are validated against that schema before the handler runs, so handlers only
// ever see well-formed input. Handler failures are reported as tool results
// flagged with isError, while unknown tools and malformed arguments surface as
// JSON-RPC invalid-params errors.
package registry
