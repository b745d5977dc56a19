// internal/catalog/schema.go
package catalog

// datasetSchema is the JSON Schema every catalog file must satisfy before it
// is decoded. Each course must carry a cutoff for all five admission
// categories; extra cutoff keys are rejected.
const datasetSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["id", "code", "name", "ranking", "highestPackage", "description", "courses"],
    "additionalProperties": false,
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "code": {"type": "integer", "minimum": 1},
      "name": {"type": "string", "minLength": 1},
      "ranking": {"type": "integer", "minimum": 1},
      "highestPackage": {"type": "number", "minimum": 0},
      "description": {"type": "string", "minLength": 1},
      "image": {"type": "string"},
      "courses": {
        "type": "array",
        "minItems": 1,
        "items": {
          "type": "object",
          "required": ["id", "name", "cutoffs"],
          "additionalProperties": false,
          "properties": {
            "id": {"type": "integer", "minimum": 1},
            "name": {"type": "string", "minLength": 1},
            "cutoffs": {
              "type": "object",
              "required": ["OC", "MBC", "BC", "BCM", "SC"],
              "additionalProperties": false,
              "properties": {
                "OC": {"type": "number", "minimum": 0},
                "MBC": {"type": "number", "minimum": 0},
                "BC": {"type": "number", "minimum": 0},
                "BCM": {"type": "number", "minimum": 0},
                "SC": {"type": "number", "minimum": 0}
              }
            }
          }
        }
      }
    }
  }
}`
