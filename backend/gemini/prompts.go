package gemini

import (
	"fmt"
	"strings"

	"socratia/backend/models"
)

// CurriculumPrompt asks for a day-by-day concept breakdown of a topic.
func CurriculumPrompt(topic string, days int) string {
	return fmt.Sprintf(`Create a %d-day learning curriculum for the topic: %s

Please respond with ONLY a JSON object in this exact format:
{
  "lessons": [
    {
      "day": 1,
      "concepts": ["concept1", "concept2", "concept3"]
    },
    {
      "day": 2,
      "concepts": ["concept4", "concept5", "concept6"]
    }
  ]
}

Guidelines:
- Each day should have 3-5 specific concepts/subtopics
- Concepts should be clear, specific learning objectives
- Progress logically from basic to advanced concepts
- Make concepts practical and actionable
- Each concept should be learnable in a focused session

Do not include any explanation, just return the JSON.`, days, topic)
}

// OpeningQuestionPrompt asks for the first Socratic question of a lesson.
func OpeningQuestionPrompt(concept string) string {
	return fmt.Sprintf(`You are Socrates, but speak in simple, everyday language that anyone can understand.
Start a conversation about: "%s"

Ask a simple question that will help the student think about this topic.
The question should:
1. Use everyday words and short sentences
2. Focus on one main idea
3. Be easy to understand
4. Make the student think, but not feel overwhelmed

Return ONLY a raw JSON object (no markdown formatting, no code blocks) with this exact structure:
{
  "question": {
    "id": 1,
    "text": "your question here"
  }
}`, concept)
}

// ContinuePrompt asks the model to either pose the next question or, if
// the student has shown understanding, close the lesson with a summary.
func ContinuePrompt(concept string, history []models.ConversationTurn) string {
	var transcript strings.Builder
	for _, turn := range history {
		transcript.WriteString(fmt.Sprintf("\nSocrates: %s\nStudent: %s\nSocrates: %s\n", turn.Text, turn.UserAnswer, turn.Feedback))
	}
	nextID := len(history) + 1

	return fmt.Sprintf(`You are Socrates, but speak in simple, everyday language that anyone can understand.
Continue the conversation about: "%s"

Previous conversation:
%s

First, decide if the student has shown good understanding of the topic. Look for:
1. Clear and accurate answers
2. Understanding of key concepts
3. Ability to explain ideas in their own words
4. Consistent understanding across multiple questions

If the student has shown good understanding, provide a summary that:
1. Uses simple, everyday words
2. Explains the main ideas they've learned
3. Shows how their answers fit together
4. Is encouraging and positive
5. Is 3-4 sentences long

If they're still learning, ask a simple follow-up question that will:
1. Use everyday words and short sentences
2. Build on what they just said
3. Help them think more about the topic
4. Focus on one main idea
5. Be easy to understand

Return ONLY a raw JSON object (no markdown formatting, no code blocks) with this exact structure:
If they understand well:
{
  "summary": {
    "id": %d,
    "text": "your summary here"
  }
}

If they're still learning:
{
  "question": {
    "id": %d,
    "text": "your next question here"
  }
}`, concept, transcript.String(), nextID, nextID)
}

// FeedbackPrompt asks for short feedback on a single answer.
func FeedbackPrompt(concept, question, answer string) string {
	return fmt.Sprintf(`Give feedback on this student answer about "%s":

Question: %s
Their answer: "%s"

Give helpful feedback in 2-3 sentences. Point out what they got right and gently guide them if they missed something. Be encouraging and use simple language.

Return JSON only: {"feedback": "your feedback here"}`, concept, question, answer)
}

// ReflectionSummaryPrompt asks for a prose summary of an end-of-day
// reflection. The reply is used verbatim, no JSON expected.
func ReflectionSummaryPrompt(reflection string) string {
	return fmt.Sprintf(`You are a helpful AI that summarizes learning reflections. Create a concise, insightful summary that captures the key learnings and insights. Format it in a journal-like style.

User's reflection:
%s`, reflection)
}
