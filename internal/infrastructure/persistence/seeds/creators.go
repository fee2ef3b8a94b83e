// Package seeds loads fixture data into a fresh database.
package seeds

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/creatorfund/creatorfund/internal/application/creator/dto"
	"github.com/creatorfund/creatorfund/internal/shared/errors"
	"github.com/creatorfund/creatorfund/internal/shared/logger"
	"github.com/creatorfund/creatorfund/internal/shared/utils"
)

// CreatorsFile is the YAML layout of a creators fixture.
type CreatorsFile struct {
	Creators []dto.CreateCreatorRequest `yaml:"creators"`
}

type creatorCreator interface {
	Execute(ctx context.Context, req dto.CreateCreatorRequest) (*dto.CreatorDTO, error)
}

// Result counts what a seed run did.
type Result struct {
	Created int
	Skipped int
}

// LoadCreators decodes and validates a creators fixture. Unknown keys are
// rejected so typos do not silently drop data.
func LoadCreators(r io.Reader) ([]dto.CreateCreatorRequest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file CreatorsFile
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode creators file: %w", err)
	}

	for i, req := range file.Creators {
		if err := utils.ValidateStruct(req); err != nil {
			return nil, fmt.Errorf("creator #%d (%s): %w", i+1, req.DisplayName, err)
		}
	}
	return file.Creators, nil
}

// LoadCreatorsFile opens path and decodes it with LoadCreators.
func LoadCreatorsFile(path string) ([]dto.CreateCreatorRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open creators file: %w", err)
	}
	defer f.Close()

	return LoadCreators(f)
}

// SeedCreators creates every creator that does not exist yet. Creators whose
// slug is taken are skipped, so seeding twice is harmless.
func SeedCreators(ctx context.Context, uc creatorCreator, reqs []dto.CreateCreatorRequest, log logger.Interface) (*Result, error) {
	result := &Result{}
	for _, req := range reqs {
		created, err := uc.Execute(ctx, req)
		if err != nil {
			if errors.IsConflictError(err) {
				log.Infow("creator already exists, skipping", "display_name", req.DisplayName, "slug", req.Slug)
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("failed to seed creator %q: %w", req.DisplayName, err)
		}
		log.Infow("creator seeded", "slug", created.Slug, "payment_methods", len(created.PaymentMethods))
		result.Created++
	}
	return result, nil
}
