/*
Package observability provides tools for monitoring the Quest engine.

It includes Prometheus counters fed by the engine lifecycle hooks, debug
logging hooks, and the anonymized diagnostics dump that users copy to the
clipboard when reporting a problem.
*/
package observability
