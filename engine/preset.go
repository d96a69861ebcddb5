package engine

import (
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sghaida/qdi/di"
)

// ParsePresets reads named option presets from a YAML document mapping
// qualifier names to options:
//
//	SEAT:
//	  make: Cupra
//	  torque_nm: 370
//	  cost_usd: 1200
//	"Wile E. Coyote":
//	  make: ACME
//	  torque_nm: 1000000
//	  cost_usd: 742000
func ParsePresets(data []byte) (map[string]Options, error) {
	presets := map[string]Options{}
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// RegisterPresets binds every preset as a named constant for TokenOptions.
// Names are registered in sorted order so a failure is deterministic.
func RegisterPresets(k *di.Kernel, presets map[string]Options) error {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := RegisterOptions(k, name, presets[name]); err != nil {
			return err
		}
	}
	return nil
}
