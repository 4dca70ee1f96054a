// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config supplies the key-value settings consumed at start-up.
package config

import (
	"fmt"
	"io/ioutil"
	"sort"
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/gobuffalo/packr"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Store looks up raw setting values by key
type Store interface {
	Lookup(key string) (string, bool)
}

// MapStore is an in-memory Store
type MapStore map[string]string

// Lookup implements Store
func (m MapStore) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// SetString sets a text value
func (m MapStore) SetString(key, value string) {
	m[key] = value
}

// SetInt sets an integer value
func (m MapStore) SetInt(key string, value int) {
	m[key] = strconv.Itoa(value)
}

// SetBool sets a boolean value
func (m MapStore) SetBool(key string, value bool) {
	m[key] = strconv.FormatBool(value)
}

// Keys returns the stored keys in order
func (m MapStore) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Chain consults each store in turn, the first hit wins.
type Chain []Store

// Lookup implements Store
func (c Chain) Lookup(key string) (string, bool) {
	for _, s := range c {
		if s == nil {
			continue
		}
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}

// EnvPrefix is prepended to keys looked up in the environment
const EnvPrefix = "VKCTX_"

// EnvStore reads settings from the process environment
type EnvStore struct{}

// NewEnvStore reloads the environment, picking up variables set since
// start-up, and returns a Store over it.
func NewEnvStore() EnvStore {
	envy.Reload()
	return EnvStore{}
}

// Lookup implements Store
func (EnvStore) Lookup(key string) (string, bool) {
	v, err := envy.MustGet(EnvPrefix + key)
	if err != nil {
		return "", false
	}
	return v, true
}

// DotEnv reads settings from a .env file. Keys may carry EnvPrefix.
func DotEnv(path string) (MapStore, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	m := make(MapStore, len(values))
	for k, v := range values {
		m[strings.TrimPrefix(k, EnvPrefix)] = v
	}
	return m, nil
}

// YAML reads settings from a YAML document. Nested keys are joined
// with an underscore and upper-cased, so window.width becomes WINDOW_WIDTH.
func YAML(data []byte) (MapStore, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	m := MapStore{}
	flatten(m, "", doc)
	return m, nil
}

// YAMLFile reads settings from a YAML file
func YAMLFile(path string) (MapStore, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return YAML(data)
}

func flatten(m MapStore, prefix string, node map[string]interface{}) {
	for k, v := range node {
		key := strings.ToUpper(k)
		if prefix != "" {
			key = prefix + "_" + key
		}
		switch value := v.(type) {
		case map[string]interface{}:
			flatten(m, key, value)
		case nil:
			m[key] = ""
		default:
			m[key] = fmt.Sprint(value)
		}
	}
}

var defaults = packr.NewBox("./defaults")

// Defaults returns the bundled default settings
func Defaults() (MapStore, error) {
	data, err := defaults.Find("vkctx.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "loading bundled defaults")
	}
	return YAML(data)
}

// Sources builds the lookup chain used by the binaries: environment,
// then the optional .env and YAML files, then the bundled defaults.
func Sources(dotenvPath, yamlPath string) (Chain, error) {
	chain := Chain{NewEnvStore()}
	if dotenvPath != "" {
		m, err := DotEnv(dotenvPath)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	if yamlPath != "" {
		m, err := YAMLFile(yamlPath)
		if err != nil {
			return nil, err
		}
		chain = append(chain, m)
	}
	d, err := Defaults()
	if err != nil {
		return nil, err
	}
	return append(chain, d), nil
}
