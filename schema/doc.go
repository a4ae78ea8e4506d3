// Package schema validates parsed documents against a declarative
// per-entity contract.
//
// A schema is itself a document: a root object mapping entity names to
// descriptors. A descriptor declares an entity kind ("array" or
// "object"), its required fields, and optional per-field constraints:
//
//	{
//	  "users": {
//	    "type": "array",
//	    "fields": ["id", "name", "email"],
//	    "field_types": {"id": "number", "name": "string"},
//	    "min_items": 1,
//	    "ranges": {"id": {"min": 1}},
//	    "formats": {"email": "email"},
//	    "exprs": {"name": "len(value) > 0"}
//	  }
//	}
//
// Validate collects every violation in one pass rather than stopping at
// the first. Fields present in the data but absent from the schema are
// deliberately ignored: a schema is a minimum contract, not a closed one.
package schema
