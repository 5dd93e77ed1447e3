// Copyright 2026 The Lexq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexqcore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type DataSourceType string

const (
	DataSourceTypeClickhouse DataSourceType = "clickhouse"
	DataSourceTypePostgresql DataSourceType = "postgresql"
	DataSourceTypeMysql      DataSourceType = "mysql"
	DataSourceTypeSqlite     DataSourceType = "sqlite"
)

// ConnectionConfig holds the engine connection parameters. Path is used by
// file-backed engines (sqlite) and ignored by the server-based ones.
type ConnectionConfig struct {
	Host     string `yaml:"host,omitempty"`
	Port     int    `yaml:"port,omitempty"`
	Database string `yaml:"database,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	Path     string `yaml:"path,omitempty"`
}

type DataSource struct {
	Name          string           `yaml:"name"`
	Type          DataSourceType   `yaml:"type"`
	Configuration ConnectionConfig `yaml:"configuration"`
}

type DataSourcesFileConfig struct {
	DataSources []DataSource `yaml:"datasources"`
}

// FindDataSource returns the datasource with the given name.
func (c *DataSourcesFileConfig) FindDataSource(name string) (*DataSource, error) {
	for i := range c.DataSources {
		if c.DataSources[i].Name == name {
			return &c.DataSources[i], nil
		}
	}

	return nil, fmt.Errorf("datasource %q is not defined", name)
}

func LoadDataSourcesFileConfig(fileName string) (*DataSourcesFileConfig, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg DataSourcesFileConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse datasources file %s: %w", fileName, err)
	}

	return &cfg, nil
}
