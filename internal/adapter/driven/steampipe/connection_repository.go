package steampipe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/aws-sso-manager-go/internal/domain/entity"
	"github.com/diillson/aws-sso-manager-go/internal/domain/repository"
	"github.com/diillson/aws-sso-manager-go/internal/shared/fileutil"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

const blockType = "connection"

// ConnectionRepositoryImpl implementa o ConnectionRepository gerando HCL.
type ConnectionRepositoryImpl struct {
	path string
}

// NewConnectionRepository cria uma nova implementação do ConnectionRepository.
func NewConnectionRepository(path string) repository.ConnectionRepository {
	return &ConnectionRepositoryImpl{path: path}
}

func (r *ConnectionRepositoryImpl) Path() string {
	return r.path
}

func (r *ConnectionRepositoryImpl) Write(set entity.ConnectionSet) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("failed to create Steampipe config directory: %w", err)
	}

	if err := os.WriteFile(r.path, Render(set), 0644); err != nil {
		return fmt.Errorf("error writing Steampipe config %s: %w", r.path, err)
	}
	return nil
}

// Render returns the formatted HCL document for a connection set: one block
// per connection followed by the aggregator block.
func Render(set entity.ConnectionSet) []byte {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for _, conn := range set.Connections {
		block := body.AppendNewBlock(blockType, []string{conn.Name}).Body()
		block.SetAttributeValue("plugin", cty.StringVal(conn.Plugin))
		block.SetAttributeValue("profile", cty.StringVal(conn.Profile))
		block.SetAttributeValue("regions", stringList(conn.Regions))
		body.AppendNewline()
	}

	agg := body.AppendNewBlock(blockType, []string{set.Aggregator.Name}).Body()
	agg.SetAttributeValue("plugin", cty.StringVal(set.Aggregator.Plugin))
	agg.SetAttributeValue("type", cty.StringVal(set.Aggregator.Type))
	agg.SetAttributeValue("connections", stringList(set.Aggregator.Connections))

	return hclwrite.Format(f.Bytes())
}

func stringList(values []string) cty.Value {
	if len(values) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, 0, len(values))
	for _, v := range values {
		vals = append(vals, cty.StringVal(v))
	}
	return cty.ListVal(vals)
}

func (r *ConnectionRepositoryImpl) Clear() (bool, error) {
	return fileutil.RemoveIfExists(r.path)
}
