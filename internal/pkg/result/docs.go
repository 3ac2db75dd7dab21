// Package result provides Result, a success/failure container used across the
// order lifecycle contract to report outcomes as data instead of panics.
//
// A Result is built only through Ok / Err (or OkUnit / ErrUnit for operations
// without a value) and is never mutated afterwards. Failures carry a message and
// a Code from the shared error catalogue.
//
// Combinators:
//   - Map, Bind, TryMap: chain computations; failures short-circuit and panics
//     raised by the supplied function become CodeInternalError failures
//   - OnSuccess, OnFailure: synchronous side-effect hooks returning the input
//   - Combine, CombineUnit: aggregate several results into one
//
// Example:
//
//	dest := result.Bind(order.ParseStatusResult(raw), routing.ResolveStatus).
//	    OnFailure(func(msg string, code result.Code) {
//	        logger.Warn("cannot route", "code", code, "error", msg)
//	    })
package result
