package service

import "fmt"

// Prompt builders for the Gemini-backed endpoints. Each prompt pins the
// expected output format so the parsers in ai_response.go have a fighting
// chance of getting strict JSON back.

func questionAnswerPrompt(role, experience, topicToFocus string, numberOfQuestions int) string {
	return fmt.Sprintf(`You are an AI trained to generate technical interview questions and answers.

Task:
- Role: %s
- Candidate Experience: %s years
- Focus Topics: %s
- Write %d interview questions.
- For each question, generate a detailed but beginner-friendly answer.
- If the answer needs a code example, add a small code block inside.
- Keep formatting very clean.
- Return a pure JSON array like:
[
  {
    "question": "Question here?",
    "answer": "Answer here."
  }
]
Important: Do NOT add any extra text. Only return valid JSON.`,
		role, experience, topicToFocus, numberOfQuestions)
}

func conceptExplainPrompt(question string) string {
	return fmt.Sprintf(`You are an AI trained to generate explanations for a given interview question.

Task:
- Explain the following interview question and its concept in depth as if you're teaching a beginner developer.
- Question: "%s"
- After the explanation, provide a short and clear title that summarizes the concept for the article or page header.
- If the explanation includes a code example, provide a small code block.
- Keep the formatting very clean and clear.
- Return the result as a valid JSON object in the following format:
{
  "title": "Short title here?",
  "explanation": "Explanation here."
}
Important: Do NOT add any extra text outside the JSON format. Only return valid JSON.`,
		question)
}

func mockQuestionsPrompt(role, topics, experience string) string {
	return fmt.Sprintf(`Generate 5 concise interview questions for a %s with %s experience. Cover the following topics: %s. For each, also provide a model answer. Format as JSON: [{"question": "...", "answer": "..."}]`,
		role, experience, topics)
}

func answerReviewPrompt(userAns, correctAns string) string {
	return fmt.Sprintf(`
Compare the following answers and rate the user response from 1 to 10.

Return ONLY a valid JSON object in this format:

{
  "feedback": "Your answer is accurate but lacks depth.",
  "rating": 8
}

User Answer: %s

Ideal Answer: %s
`, userAns, correctAns)
}
