package api

import (
	"encoding/json"
)

// SchemaNode is one node of a structural schema submitted to the daemon.
// The daemon stores schema content and addresses it by hash; this client
// treats the structure as opaque beyond JSON shape.
type SchemaNode struct {
	Name       string                `json:"name,omitempty"`
	Pin        bool                  `json:"pin,omitempty"`
	Mill       string                `json:"mill,omitempty"`
	Opts       map[string]string     `json:"opts,omitempty"`
	JsonSchema json.RawMessage       `json:"json_schema,omitempty"`
	Links      map[string]SchemaNode `json:"links,omitempty"`
}

type schemaRefKind uint8

const (
	SCHEMA_NONE = schemaRefKind(iota)
	SCHEMA_INLINE
	SCHEMA_REF
)

// SchemaRef names the schema for a new thread in one of three ways: not at
// all, as an inline SchemaNode to be stored first, or as a string which is
// either a built-in default schema name or an existing content hash.
type SchemaRef struct {
	kind schemaRefKind
	node SchemaNode
	ref  string
}

// NoSchema leaves schema selection to the daemon.
func NoSchema() SchemaRef {
	return SchemaRef{kind: SCHEMA_NONE}
}

// InlineSchema submits node before thread creation and uses its hash.
func InlineSchema(node SchemaNode) SchemaRef {
	return SchemaRef{kind: SCHEMA_INLINE, node: node}
}

// SchemaByRef refers to a schema by default name or content hash.  No
// format validation is performed on ref.
func SchemaByRef(ref string) SchemaRef {
	return SchemaRef{kind: SCHEMA_REF, ref: ref}
}

func (schema SchemaRef) IsNone() bool {
	return schema.kind == SCHEMA_NONE
}

func (schema SchemaRef) Inline() (SchemaNode, bool) {
	return schema.node, schema.kind == SCHEMA_INLINE
}

func (schema SchemaRef) Ref() (string, bool) {
	return schema.ref, schema.kind == SCHEMA_REF
}
