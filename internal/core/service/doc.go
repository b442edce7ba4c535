// Package service provides the arithmetic service used by a bigsum session.
//
// The service wraps the pure bignum functions with the session's operand
// policy (digit limit), structured logging and metrics. Callers depend on
// the Calculator interface.
package service
