// Package api adapts HTTP requests to the newsroom services. Handlers parse
// path parameters and bodies, reject malformed input before any service call,
// wrap results in their response envelopes and hand every failure to
// HandleAPIError, the single place where an error becomes a status code.
package api
