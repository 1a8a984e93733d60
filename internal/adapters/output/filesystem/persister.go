package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
	"github.com/olusolaa/aws-config-snapshot/pkg/convert"
)

// ConfigSubfolder holds one directory per region below the output folder.
const ConfigSubfolder = "aws_configs"

var encoder = jsoniter.Config{
	SortMapKeys:            true,
	EscapeHTML:             false,
	ValidateJsonRawMessage: true,
}.Froze()

// Persister writes category documents to
// <root>/aws_configs/<region>/<category>.json.
type Persister struct {
	root   string
	logger ports.Logger
}

var _ ports.Persister = (*Persister)(nil)

func NewPersister(root string, logger ports.Logger) *Persister {
	return &Persister{root: root, logger: logger}
}

// RegionDir is the directory holding the files of region.
func (p *Persister) RegionDir(region string) string {
	return filepath.Join(p.root, ConfigSubfolder, region)
}

func (p *Persister) Persist(ctx context.Context, region string, category domain.Category, doc domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := p.RegionDir(region)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, errors.CodePersistError, fmt.Sprintf("failed to create directory '%s'", dir))
	}

	data, err := Encode(doc)
	if err != nil {
		return errors.Wrap(err, errors.CodePersistError, fmt.Sprintf("failed to encode %s for %s", category, region))
	}

	path := filepath.Join(dir, category.String()+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, errors.CodePersistError, fmt.Sprintf("failed to write '%s'", path))
	}
	p.logger.Debugf(ctx, "Wrote %s (%d bytes)", path, len(data))
	return nil
}

// Encode renders doc with sorted keys and a one-space indent. Values the
// encoder rejects are rendered as strings.
func Encode(doc domain.Document) ([]byte, error) {
	compact, err := encoder.Marshal(map[string]any(doc))
	if err != nil {
		compact, err = encoder.Marshal(convert.Normalize(map[string]any(doc)))
		if err != nil {
			return nil, err
		}
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", " "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// PrepareOutputDir makes sure dir can receive a fresh snapshot. An existing
// dir is removed when force is set and rejected otherwise.
func PrepareOutputDir(dir string, force bool) error {
	_, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return errors.Wrap(err, errors.CodePersistError, fmt.Sprintf("cannot inspect output folder '%s'", dir))
	case !force:
		return errors.NewUserFacing(errors.CodeOutputExists,
			fmt.Sprintf("Output folder '%s' already exists.", dir),
			"Provide a different folder (using '-o' option) or use the '-f' option to overwrite existing folder")
	}
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrap(err, errors.CodePersistError, fmt.Sprintf("failed to remove output folder '%s'", dir))
	}
	return nil
}
