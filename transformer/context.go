package transformer

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// Context is the mutable state shared by transformers during one transform.
// Implementations are not safe for concurrent use.
type Context interface {
	TypeDefinitionsOfKind(kind ast.DefinitionKind) ast.DefinitionList
	Resource(id LogicalID) *Resource
	SetResource(id LogicalID, resource *Resource)
}

var _ Context = (*MemoryContext)(nil)

// MemoryContext is a Context over a parsed schema document.
type MemoryContext struct {
	doc       *ast.SchemaDocument
	resources map[LogicalID]*Resource
}

func NewContext(doc *ast.SchemaDocument) *MemoryContext {
	return &MemoryContext{
		doc:       doc,
		resources: make(map[LogicalID]*Resource),
	}
}

func (c *MemoryContext) Document() *ast.SchemaDocument {
	return c.doc
}

func (c *MemoryContext) TypeDefinitionsOfKind(kind ast.DefinitionKind) ast.DefinitionList {
	var defs ast.DefinitionList
	for _, def := range c.doc.Definitions {
		if def.Kind == kind {
			defs = append(defs, def)
		}
	}
	return defs
}

func (c *MemoryContext) Resource(id LogicalID) *Resource {
	return c.resources[id]
}

func (c *MemoryContext) SetResource(id LogicalID, resource *Resource) {
	c.resources[id] = resource
}

// LogicalIDs returns ids of all registered resources in lexical order.
func (c *MemoryContext) LogicalIDs() []LogicalID {
	ids := make([]LogicalID, 0, len(c.resources))
	for id := range c.resources {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
	return ids
}
