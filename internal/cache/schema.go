package cache

import "github.com/santhosh-tekuri/jsonschema/v5"

// envelopeSchema describes the persisted envelope shape. Anything that does
// not validate is treated as corruption and therefore a miss.
const envelopeSchema = `{
  "type": "object",
  "required": ["timestamp", "data"],
  "properties": {
    "timestamp": {"type": "integer", "minimum": 0},
    "data": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "category", "name", "phone", "county", "district", "address", "offer"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "category": {"type": "string"},
          "name": {"type": "string"},
          "phone": {"type": "string"},
          "county": {"type": "string"},
          "district": {"type": "string"},
          "address": {"type": "string"},
          "offer": {"type": "string"}
        }
      }
    }
  }
}`

var compiledEnvelopeSchema = jsonschema.MustCompileString("envelope.json", envelopeSchema)

// validEnvelope reports whether raw bytes parse and validate as an Envelope.
func validEnvelope(raw []byte) bool {
	v, err := decodeJSON(raw)
	if err != nil {
		return false
	}
	return compiledEnvelopeSchema.Validate(v) == nil
}
