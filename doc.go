// Package oncecell provides a single-flight, memoizing cell around one
// producer function.
//
// A Cell coordinates any number of concurrent requesters around a single,
// possibly expensive, possibly asynchronous producer. The producer runs at
// most once per round: requests that arrive while a round is in flight are
// queued and share its outcome, and a success is cached forever. A failure
// is never cached, so the next request launches a fresh round — a failed
// attempt does not poison the cell.
//
// Bind a producer with [New], then call [Cell.Request] (callback style) or
// [Cell.Get] (blocking) from as many goroutines as you like:
//
//	cell := oncecell.New(func(c *oncecell.Cell[*Config]) {
//		go func() {
//			cfg, err := loadConfig()
//			c.Report(cfg, err)
//		}()
//	})
//
//	cfg, err := cell.Get(ctx)
//
// The producer may call [Cell.Report] before returning (synchronous
// completion) or keep the cell handle and report later from another
// goroutine. Requests never block inside the cell; Get's waiting happens on
// the caller's side and respects context cancellation.
//
// A Cell governs exactly one producer/result pair. For a keyed cache,
// compose cells with a [Group].
package oncecell
