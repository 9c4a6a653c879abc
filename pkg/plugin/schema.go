package plugin

// ListSchema validates the shape of a persisted plugin list before parsing:
// an array of objects whose known keys, when present, carry the expected
// primitive types. Requiredness of individual fields is not checked here —
// a record missing its mandatory keys is skipped during load rather than
// failing the whole file.
const ListSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": { "$ref": "#/definitions/record" },
  "definitions": {
    "record": {
      "type": "object",
      "properties": {
        "pkgname": { "type": "string" },
        "ali": { "type": "string" },
        "name": { "type": "string" },
        "low": { "type": "integer" },
        "high": { "type": "integer" },
        "ver": { "type": "integer" },
        "verv": { "type": "integer" },
        "path": { "type": "string" },
        "type": { "type": "integer" },
        "used": { "type": "boolean" },
        "frm_ver": { "type": "integer" },
        "upinfo": { "$ref": "#/definitions/record" },
        "delinfo": { "$ref": "#/definitions/record" }
      }
    }
  }
}`
