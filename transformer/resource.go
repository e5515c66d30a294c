package transformer

// LogicalID identifies a generated resource within the transform output.
type LogicalID string

const (
	ResourceTypeResolver   = "AWS::AppSync::Resolver"
	ResourceTypeDataSource = "AWS::AppSync::DataSource"
)

type Resource struct {
	Type       string             `json:"Type" yaml:"Type"`
	DependsOn  []LogicalID        `json:"DependsOn,omitempty" yaml:"DependsOn,omitempty"`
	Properties ResourceProperties `json:"Properties" yaml:"Properties"`
}

type ResourceProperties interface {
	isResourceProperties()
}

var _ ResourceProperties = (*ResolverProperties)(nil)
var _ ResourceProperties = (*DataSourceProperties)(nil)

type ResolverProperties struct {
	APIID                   string `json:"ApiId" yaml:"ApiId"`
	DataSourceName          string `json:"DataSourceName" yaml:"DataSourceName"`
	TypeName                string `json:"TypeName" yaml:"TypeName"`
	FieldName               string `json:"FieldName" yaml:"FieldName"`
	RequestMappingTemplate  string `json:"RequestMappingTemplate" yaml:"RequestMappingTemplate"`
	ResponseMappingTemplate string `json:"ResponseMappingTemplate" yaml:"ResponseMappingTemplate"`
}

func (*ResolverProperties) isResourceProperties() {}

type DataSourceProperties struct {
	APIID          string          `json:"ApiId" yaml:"ApiId"`
	Name           string          `json:"Name" yaml:"Name"`
	Type           string          `json:"Type" yaml:"Type"`
	DynamoDBConfig *DynamoDBConfig `json:"DynamoDBConfig,omitempty" yaml:"DynamoDBConfig,omitempty"`
}

func (*DataSourceProperties) isResourceProperties() {}

type DynamoDBConfig struct {
	TableName string `json:"TableName" yaml:"TableName"`
	AwsRegion string `json:"AwsRegion" yaml:"AwsRegion"`
}

// Resolver returns the resolver properties, or nil when r is not a resolver.
func (r *Resource) Resolver() *ResolverProperties {
	if r == nil {
		return nil
	}
	props, ok := r.Properties.(*ResolverProperties)
	if !ok {
		return nil
	}
	return props
}
