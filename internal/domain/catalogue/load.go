package catalogue

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/sportfit/internal/domain/model"
)

// Load reads a YAML catalogue file and freezes it. The file holds a
// top-level "sports" list whose items use the koanf tags of
// model.SportProfile:
//
//	sports:
//	  - id: athletics
//	    name: Athletics
//	    icon: directions_run
//	    high_threshold: 80
//	    weights:
//	      30m Sprint: 0.3
//	    strength_tags: [Explosive speed]
//	    improvement_tags: [Block starts]
//	    reasoning: [Sprint results point to fast-twitch power.]
func Load(ctx context.Context, path string) (*Catalogue, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadCatalogue, err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalogue, path, err)
	}

	var doc struct {
		Sports []model.SportProfile `koanf:"sports"`
	}
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalogue, path, err)
	}

	c, err := New(doc.Sports...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadCatalogue, path, err)
	}
	return c, nil
}
