// Package service contains the request orchestration for the newsroom API.
//
// Each service coordinates one or more stores (defined in internal/store) to
// fulfil an API operation. Chains of dependent queries run in order inside a
// single transaction and stop at the first failure.
//
// Services never choose HTTP statuses. Expected failures are returned as
// *domain.Error values that carry the client-facing message; anything else is
// wrapped in *ServiceError and surfaces as an internal error.
package service
