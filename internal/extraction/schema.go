package extraction

import "github.com/clinical-scales-server/internal/domain"

// BuildSchema builds the structured-output schema for one extraction call.
// Each variable maps to a per-kind constraint object: categorical values are
// pinned to the catalog enum, numerical units to the legal unit list, and
// null is always admitted so the model can report absence.
func BuildSchema(variables []domain.VariableDefinition) domain.SchemaObject {
	properties := make(map[string]interface{}, len(variables))

	for _, v := range variables {
		if v.Kind == domain.CATEGORICAL {
			properties[v.Name] = map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"value": map[string]interface{}{
						"type": []string{"string", "null"},
						"enum": withNull(v.PossibleValues),
					},
					"errorMessage": map[string]interface{}{
						"type": []string{"string", "null"},
					},
				},
				"required": []string{"value", "errorMessage"},
			}
			continue
		}

		properties[v.Name] = map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"value": map[string]interface{}{
					"type": []string{"number", "null"},
				},
				"unit": map[string]interface{}{
					"type": []string{"string", "null"},
					"enum": withNull(v.PossibleUnits),
				},
				"errorMessage": map[string]interface{}{
					"type": []string{"string", "null"},
				},
			},
			"required": []string{"value", "unit", "errorMessage"},
		}
	}

	return domain.SchemaObject{
		"type":       "object",
		"properties": properties,
		"required":   variableNames(variables),
	}
}

func withNull(values []string) []interface{} {
	out := make([]interface{}, 0, len(values)+1)
	for _, v := range values {
		out = append(out, v)
	}
	return append(out, nil)
}

func variableNames(variables []domain.VariableDefinition) []string {
	names := make([]string, 0, len(variables))
	for _, v := range variables {
		names = append(names, v.Name)
	}
	return names
}
