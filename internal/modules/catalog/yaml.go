// README: YAML catalog source; file contents overlay the built-in data per section.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes raw YAML and overlays it on the built-in data. A non-empty
// cities list replaces the default list; map sections merge by key.
func DecodeYAML(raw []byte) (Data, error) {
	var file Data
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Data{}, fmt.Errorf("decode catalog yaml: %w", err)
	}
	return Merge(DefaultData(), file), nil
}

func ParseYAML(raw []byte) (*Catalog, error) {
	d, err := DecodeYAML(raw)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// ReadYAML reads a catalog file from disk and returns the overlaid data.
func ReadYAML(path string) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return DecodeYAML(raw)
}

func LoadYAML(path string) (*Catalog, error) {
	d, err := ReadYAML(path)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// Merge overlays src on dst and returns dst.
func Merge(dst, src Data) Data {
	if len(src.Cities) > 0 {
		dst.Cities = src.Cities
	}
	dst.Profiles = mergeMap(dst.Profiles, src.Profiles)
	dst.Experiences = mergeMap(dst.Experiences, src.Experiences)
	dst.CulturalTips = mergeMap(dst.CulturalTips, src.CulturalTips)
	dst.BestTime = mergeMap(dst.BestTime, src.BestTime)
	dst.Attractions = mergeMap(dst.Attractions, src.Attractions)
	dst.FoodGuides = mergeMap(dst.FoodGuides, src.FoodGuides)
	return dst
}

func mergeMap[V any](dst, src map[string]V) map[string]V {
	if dst == nil {
		dst = make(map[string]V, len(src))
	}
	for k, v := range src {
		dst[Key(k)] = v
	}
	return dst
}
