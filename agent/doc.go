// Package agent implements the orchestration loop that drives a reasoning
// backend through repeated Reason, Act, Evaluate cycles.
//
// Each iteration asks the backend for a plan (tools disabled), asks it to act
// on the plan (tools enabled), executes any requested tool calls through the
// toolhub dispatcher, and asks the backend to evaluate completion (tools
// disabled). A deterministic classifier decides from the evaluation text
// whether the task is finished. The loop terminates with TerminationDone or,
// after the configured iteration bound, TerminationIterationLimit.
//
// Tool results accumulate across iterations and are fed back into later
// planning prompts, so the backend can observe and react to earlier failures.
// That feedback path is the system's core resilience mechanism: per-phase and
// per-tool-call failures become text in the transcript, never aborts. Only a
// run of consecutive backend transport failures aborts the session.
//
// # Quick Start
//
//	catalog := toolhub.NewCatalog(providers, logger)
//	dispatcher := toolhub.NewDispatcher(providers, logger)
//	session := agent.NewSession(client, catalog, dispatcher, logger, nil)
//	defer session.Close()
//
//	outcome, err := session.Run(ctx, "list files in the current directory", "claude-sonnet-4-5")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(outcome.FinalText)
//
// Progress events (plans, tool calls, evaluations) are surfaced on
// session.Events() for presentation layers; the loop's correctness does not
// depend on anyone draining them.
package agent
