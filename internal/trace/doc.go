// Package trace provides the tracing (logging) subsystem of the evaluator.
//
// Tracing lets a caller see how an expression travels through the pipeline:
// which stage ran, how long it took and, at the most verbose level, every
// token the tokenizer emitted and every stack operation of the converter and
// the evaluator.
//
// # Architecture
//
//   - Nop: zero-overhead tracer used when tracing is disabled
//   - StreamTracer: immediate write to an io.Writer (text or NDJSON)
//   - RingTracer: circular buffer, dumped on demand
//   - MultiTracer: fans out to several tracers
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only failures
//   - LevelStage: Compute and stage boundaries
//   - LevelDetail: Stage summaries
//   - LevelDebug: Everything including single tokens
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeStage, "tokenize", parentID)
//	defer span.End("")
package trace
