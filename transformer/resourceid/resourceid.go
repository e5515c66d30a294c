// Package resourceid holds the logical id naming conventions shared with the
// model transformer. Other transformers use them to find generated resources.
package resourceid

import (
	"fmt"

	"github.com/vvakame/gqltransform/transformer"
)

func CreateResolver(typeName string) transformer.LogicalID {
	return transformer.LogicalID(fmt.Sprintf("Create%sResolver", typeName))
}

func UpdateResolver(typeName string) transformer.LogicalID {
	return transformer.LogicalID(fmt.Sprintf("Update%sResolver", typeName))
}

func DeleteResolver(typeName string) transformer.LogicalID {
	return transformer.LogicalID(fmt.Sprintf("Delete%sResolver", typeName))
}

func GetResolver(typeName string) transformer.LogicalID {
	return transformer.LogicalID(fmt.Sprintf("Get%sResolver", typeName))
}

func ListResolver(typeName string) transformer.LogicalID {
	return transformer.LogicalID(fmt.Sprintf("List%sResolver", typeName))
}

func DataSource(typeName string) transformer.LogicalID {
	return transformer.LogicalID(fmt.Sprintf("%sDataSource", typeName))
}

func Table(typeName string) transformer.LogicalID {
	return transformer.LogicalID(fmt.Sprintf("%sTable", typeName))
}
