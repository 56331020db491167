package ai

import (
	"encoding/json"
	"fmt"

	"github.com/mklimuk/minutes-pilot/pkg/model"
)

// PlaceholderTranscript is summarized when no recording is available.
const PlaceholderTranscript = "The recorded meeting transcript goes here. The AI turns this text into a summary."

// ReportPrompt asks for an answer to query grounded only in the dataset.
func ReportPrompt(query string, d model.Dataset) (string, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode dataset: %w", err)
	}

	return fmt.Sprintf(`
You are a data analyst for a meeting management system.
Answer the user's request using only the JSON data below.

User request: "%s"

JSON data:
%s

Answer clearly and concisely. If the data is not sufficient to answer, say so.
`, query, data), nil
}

// SummarizePrompt asks for a management summary of a meeting transcript.
func SummarizePrompt(transcript string) string {
	return fmt.Sprintf(`Write a management summary of this meeting transcript. Mention only the key points and the tasks that were defined:

%s`, transcript)
}
