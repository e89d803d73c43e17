package agent

import (
	"fmt"
	"strings"

	"github.com/FredrikJCarlsson/AIAgent/llm"
	"github.com/FredrikJCarlsson/AIAgent/toolhub"
)

const planningSystemPrompt = `You are the planning phase of an autonomous agent. Given the user's request, any results gathered so far, and the available tools, describe the next concrete step toward completing the request. Respond with a short plan in plain text. Do not call tools in this phase.`

const executionSystemPrompt = `You are the execution phase of an autonomous agent. Carry out the given plan. Use the available tools when the plan requires them; if the plan needs no tool use, say so and respond with text only.`

const evaluationSystemPrompt = `You are the evaluation phase of an autonomous agent. Judge whether the user's request has been fulfilled given the plan and the results of this step. If it has, begin your answer with "Task Evaluation: Complete" and summarize the outcome for the user. If it has not, explain what is still missing.`

// toolSummary renders the catalog as a name/description list for prompt
// context. Parameter schemas are deliberately omitted; the backend receives
// full schemas only through the tools-enabled request itself.
func toolSummary(tools []toolhub.ToolDescriptor) string {
	if len(tools) == 0 {
		return "(no tools available)"
	}
	var sb strings.Builder
	for _, t := range tools {
		fmt.Fprintf(&sb, "- %s: %s\n", t.Name, t.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// planningMessages builds the REASON phase request: user request, all results
// accumulated across the session so far, and the tool catalog summary.
func planningMessages(request string, accumulated []string, tools []toolhub.ToolDescriptor) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "User request:\n%s\n\n", request)
	if len(accumulated) > 0 {
		sb.WriteString("Results gathered so far:\n")
		for i, r := range accumulated {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, r)
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Available tools:\n%s", toolSummary(tools))

	return []llm.Message{
		llm.SystemMessage(planningSystemPrompt),
		llm.UserMessage(sb.String()),
	}
}

// executionMessages builds the ACT phase request: the plan plus the tool
// catalog summary.
func executionMessages(plan string, tools []toolhub.ToolDescriptor) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Plan:\n%s\n\n", plan)
	fmt.Fprintf(&sb, "Available tools:\n%s", toolSummary(tools))

	return []llm.Message{
		llm.SystemMessage(executionSystemPrompt),
		llm.UserMessage(sb.String()),
	}
}

// evaluationMessages builds the EVALUATE phase request: the original request,
// the plan, and this iteration's tool results. The cumulative session history
// is deliberately excluded so evaluation prompts stay reproducible per
// iteration.
func evaluationMessages(request, plan string, iterationResults []string) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "User request:\n%s\n\n", request)
	fmt.Fprintf(&sb, "Plan for this step:\n%s\n\n", plan)
	sb.WriteString("Results of this step:\n")
	if len(iterationResults) == 0 {
		sb.WriteString("(none)\n")
	} else {
		for i, r := range iterationResults {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, r)
		}
	}

	return []llm.Message{
		llm.SystemMessage(evaluationSystemPrompt),
		llm.UserMessage(sb.String()),
	}
}
