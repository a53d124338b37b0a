// Package presets contains named configurations for supported networks.
package presets

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spacemeshos/go-rewardtx/config"
)

var presets = map[string]config.Config{}

func register(name string, preset config.Config) {
	if _, exist := presets[name]; exist {
		panic(fmt.Sprintf("preset with name %s already exists", name))
	}
	presets[name] = preset
}

// Options returns list of registered options.
func Options() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Get one of the registered configs.
func Get(name string) (config.Config, error) {
	if preset, exist := presets[name]; !exist {
		return config.Config{}, fmt.Errorf("preset %s is not registered. select one of the options %+s", name, Options())
	} else {
		return preset, nil
	}
}
