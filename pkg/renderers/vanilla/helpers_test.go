package vanilla_test

import (
	"io/fs"

	"github.com/goliatone/go-uekit/pkg/model"
	"github.com/goliatone/go-uekit/pkg/renderers/vanilla"
)

func builtinAsset(name string) model.AssetSpec {
	return model.AssetSpec{Name: name, Kind: model.AssetKindBlueprint}
}

func fsReadFile(name string) ([]byte, error) {
	return fs.ReadFile(vanilla.AssetsFS(), name)
}
