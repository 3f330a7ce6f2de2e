/*
Package ddb serves templates and scene graphs from a DynamoDB catalog.

Documents are stored one per item in a single table:

	PK: "TEMPLATE#ProfileView"    SK: "BODY"    Body: <YAML document>
	PK: "SCENEGRAPH#Main"         SK: "BODY"    Body: <YAML document>

The Body attribute holds the same YAML the yamlfs backend reads from disk, so
a catalog can be seeded straight from a template directory. Load fetches the
item, parses the body, and materializes it through the class registry exactly
as the file backend does.

This backend exists for fleets that ship template revisions without
redeploying; a local host should prefer yamlfs or memory.
*/
package ddb
