package interview

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a world-class interviewer at a top tech company. Your goal is to conduct a deep, insightful interview based on the provided context from the candidate's resume and the job description.
- Ask only one question at a time.
- Use the provided context to ask specific, probing questions. For example, instead of "Tell me about a project," ask "In your project X mentioned on your resume, you used technology Y. The job requires Z. Can you explain how you would adapt your experience to meet this requirement?"
- Keep the conversation flowing naturally based on the user's previous answers.
- Do not greet the user or use pleasantries. Dive straight into the next question.`

// contextTurn renders the retrieved chunks plus the next-question
// instruction as the final user turn of the generation request.
func contextTurn(contexts []string) string {
	var b strings.Builder
	b.WriteString("Here is the relevant context from the resume and job description:\n")
	for i, c := range contexts {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "CONTEXT %d:\n%s\n", i+1, c)
	}
	b.WriteString("\nBased on this context and our conversation so far, ask the next interview question.")
	return b.String()
}
