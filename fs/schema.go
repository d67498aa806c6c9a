package fs

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// incidentsSchema describes the JSON artifact: an array of incidents, each
// carrying exactly the five incident keys as strings.
const incidentsSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"items": {
		"type": "object",
		"additionalProperties": false,
		"required": ["incident_time", "incident_number", "incident_location", "incident_nature", "incident_ori"],
		"properties": {
			"incident_time": {"type": "string", "minLength": 1},
			"incident_number": {"type": "string", "minLength": 1},
			"incident_location": {"type": "string"},
			"incident_nature": {"type": "string"},
			"incident_ori": {"type": "string", "minLength": 1}
		}
	}
}`

var schema = jsonschema.MustCompileString("incidents.schema.json", incidentsSchema)
