// Package sim provides the priority-ranking layer of the request scheduler.
//
// # Reading Guide
//
// Start with these files:
//   - request.go: Request (sequence group) and Sequence, the read-only inputs to ranking
//   - priority.go: the Policy interface and the built-in fcfs, static, sjf, ldf and lcfs policies
//   - scheduler.go: Rank and ScoreAll, the stable descending sort over policy scores
//   - registry.go: Registry, which resolves a policy by identifier
//
// # Architecture
//
// Data flows one way: the scheduler resolves a Policy from a Registry once at
// configuration time, then calls Rank(policy, now, requests) whenever it needs an
// ordering. Nothing here holds state between calls or writes to a Request.
//
// Sub-packages:
//   - sim/workload/: request snapshots loaded from YAML
//   - sim/trace/: ranking decision records and summaries
//
// # Key Interfaces
//
//   - Policy: compute a priority score for one request at a point in time
//   - PolicyConstructor: build a Policy from configuration parameters
package sim
