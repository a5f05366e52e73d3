// Package orchestration coordinates the concurrent execution of one or more
// multiplication algorithms and the cross-validation of their results.
package orchestration
