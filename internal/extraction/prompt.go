// Package extraction turns a resolved variable set plus conversation text
// into one schema-constrained language-model call and validates its output
// at the boundary.
package extraction

import (
	"fmt"
	"strings"

	"github.com/clinical-scales-server/internal/domain"
)

// notMentionedLeadIns are the localized openings for the error message a
// variable carries when the conversation never mentions it.
var notMentionedLeadIns = map[string]string{
	domain.LanguageEN: "Doctor, you did not mention",
	domain.LanguageES: "Doctor, no mencionó",
	domain.LanguagePT: "Doutor, você não mencionou",
}

// notMentionedLeadIn returns the lead-in for a language, defaulting to English
func notMentionedLeadIn(language string) string {
	if leadIn, ok := notMentionedLeadIns[language]; ok {
		return leadIn
	}
	return notMentionedLeadIns[domain.LanguageEN]
}

// NotMentionedMessage builds the full localized not-mentioned error message
// for a variable.
func NotMentionedMessage(variable *domain.VariableDefinition, language string) string {
	name := variable.MedicalName.Get(language)
	if name == "" {
		name = variable.Name
	}
	return fmt.Sprintf("%s %s", notMentionedLeadIn(language), name)
}

// BuildPrompt assembles the extraction prompt: per-variable descriptions,
// the conversation, and the extraction rules.
func BuildPrompt(variables []domain.VariableDefinition, conversation, language string) string {
	descriptions := make([]string, 0, len(variables))
	for _, v := range variables {
		descriptions = append(descriptions, fmt.Sprintf(
			"**%s** (%s):\n%s\nMedical name: %s",
			v.Name, v.Kind, v.Description, v.MedicalName.Get(language),
		))
	}

	var b strings.Builder
	b.WriteString("Extract the following clinical variables from the conversation.\n\n")
	b.WriteString("VARIABLES TO EXTRACT:\n")
	b.WriteString(strings.Join(descriptions, "\n\n"))
	b.WriteString("\n\nCONVERSATION CONTEXT:\n")
	b.WriteString(conversation)
	b.WriteString("\n\nRULES:\n")
	b.WriteString("1. Extract ONLY explicitly mentioned values\n")
	b.WriteString("2. For numerical variables: include unit of measurement\n")
	b.WriteString("3. If not mentioned: set value=null and provide errorMessage\n")
	b.WriteString(fmt.Sprintf("4. errorMessage format: %q\n", notMentionedLeadIn(language)+" [variable name]"))
	b.WriteString("\nReturn in the structured format specified.")

	return b.String()
}
