package insights

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// keyPhrasesSchema validates the key-phrase extraction response shape.
const keyPhrasesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["key_phrases"],
  "properties": {
    "key_phrases": {
      "type": "array",
      "items": {"type": "string"}
    }
  },
  "additionalProperties": false
}`

// sentimentSchema validates the sentiment classification response shape.
const sentimentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["sentiment"],
  "properties": {
    "sentiment": {
      "type": "string",
      "enum": ["positive", "neutral", "negative", "mixed"]
    }
  },
  "additionalProperties": false
}`

// validateAgainstSchema checks a raw JSON document against an embedded schema,
// returning a single error listing every violation.
func validateAgainstSchema(schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("response does not match schema: %s", strings.Join(msgs, "; "))
}
