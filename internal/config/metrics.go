package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iwvelando/vendor-insights/internal/content"
	"github.com/spf13/viper"
)

// LoadMetrics reads a VendorMetrics snapshot from a YAML or JSON file. The
// format follows the file extension; anything other than .json is read as
// YAML.
func LoadMetrics(path string) (content.VendorMetrics, error) {
	var metrics content.VendorMetrics

	v := viper.New()
	v.SetConfigFile(path)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		v.SetConfigType("json")
	} else {
		v.SetConfigType("yml")
	}

	if err := v.ReadInConfig(); err != nil {
		return metrics, fmt.Errorf("error reading metrics file, %s", err)
	}
	if err := v.Unmarshal(&metrics); err != nil {
		return metrics, fmt.Errorf("unable to decode metrics, %s", err)
	}
	return metrics, nil
}
