// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"encoding/json"
	"os"
	"strings"
)

type wrapper struct {
	Config RawConfig `json:"sgw"`
}

const EnvPrefix = "SGW"

func loadFromEnv() (RawConfig, error) {
	jsonGatewayConfig, err := loadENVToJsonStructure()
	if err != nil {
		return RawConfig{}, err
	}
	c := &wrapper{}
	err = json.Unmarshal(jsonGatewayConfig, c)
	if err != nil {
		return RawConfig{}, err
	}

	return c.Config, nil
}

func loadENVToJsonStructure() ([]byte, error) {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, EnvPrefix+"_") {
			pair := strings.SplitN(e, "=", 2)
			indexes := strings.Split(pair[0], "_")
			mountMap(structure, indexes, pair[1])
		}
	}
	return json.MarshalIndent(structure, "", "    ")
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
