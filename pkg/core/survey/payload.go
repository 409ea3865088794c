package survey

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ksysoev/feedsurvey-tgbot/pkg/core/catalog"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

var ErrPayloadSerialization = errors.New("survey payload could not be serialized")

// PayloadSerializationError is returned when a payload cannot be turned into a valid request body.
type PayloadSerializationError struct {
	Err error
}

func (e *PayloadSerializationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrPayloadSerialization, e.Err)
}

func (e *PayloadSerializationError) Is(target error) bool {
	return target == ErrPayloadSerialization
}

func (e *PayloadSerializationError) Unwrap() error {
	return e.Err
}

// Payload is the request body accepted by the scoring backend.
type Payload struct {
	Age               *int          `json:"age,omitempty"`
	AverageScreenTime *float64      `json:"averageScreenTime,omitempty"`
	Gender            string        `json:"gender,omitempty"`
	Questions         []AnswerEntry `json:"questions"`
}

var genderAPIValues = map[string]string{
	catalog.GenderMale:           "MALE",
	catalog.GenderFemale:         "FEMALE",
	catalog.GenderPreferNotToSay: "PREFER_NOT_TO_SAY",
}

// GenderToAPI maps a gender display label to the backend enum value.
func GenderToAPI(label string) (string, bool) {
	v, ok := genderAPIValues[label]
	return v, ok
}

// BuildPayload converts the answer state into the backend request shape.
// Absent demographic values are omitted. Unknown gender labels are dropped silently.
func BuildPayload(d Demographics, answers []AnswerEntry) Payload {
	p := Payload{
		Questions: make([]AnswerEntry, len(answers)),
	}

	if age, err := strconv.Atoi(strings.TrimSpace(d.Age)); err == nil {
		p.Age = &age
	}

	if g, ok := GenderToAPI(d.Gender); ok {
		p.Gender = g
	}

	if st, err := strconv.ParseFloat(strings.TrimSpace(d.AverageScreenTime), 64); err == nil {
		p.AverageScreenTime = &st
	}

	copy(p.Questions, answers)

	return p
}

// EncodePayload serializes the payload and checks it against the backend request schema.
func EncodePayload(p Payload) ([]byte, error) {
	if p.Questions == nil {
		p.Questions = []AnswerEntry{}
	}

	data, err := json.Marshal(p)
	if err != nil {
		return nil, &PayloadSerializationError{Err: err}
	}

	schema, err := requestSchema()
	if err != nil {
		return nil, &PayloadSerializationError{Err: fmt.Errorf("failed to compile request schema: %w", err)}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &PayloadSerializationError{Err: err}
	}

	if err := schema.Validate(doc); err != nil {
		return nil, &PayloadSerializationError{Err: err}
	}

	return data, nil
}

const (
	requestSchemaURL = "schema://survey/save-request.json"
	requestSchemaDef = `{
  "type": "object",
  "required": ["questions"],
  "additionalProperties": false,
  "properties": {
    "age": {"type": "integer"},
    "gender": {"enum": ["MALE", "FEMALE", "PREFER_NOT_TO_SAY"]},
    "averageScreenTime": {"type": "number"},
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question", "answer"],
        "additionalProperties": false,
        "properties": {
          "question": {"type": "string"},
          "answer": {"type": "string"}
        }
      }
    }
  }
}`
)

var requestSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(strings.NewReader(requestSchemaDef))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(requestSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	return c.Compile(requestSchemaURL)
})
