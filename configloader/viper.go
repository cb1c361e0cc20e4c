package configloader

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// newViper returns a viper instance scoped to a single file, deriving its
// format from the extension (yaml/yml/json); an extension-less file is read
// as YAML.
func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		v.SetConfigType(ext)
	} else {
		v.SetConfigType("yaml")
	}
	return v
}
