package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/mvpcoach/internal/analysis"
	"github.com/alexanderramin/mvpcoach/internal/domain"
)

// Output file names written by WriteAll.
const (
	PRDFile         = "PRD.md"
	RoadmapJSONFile = "roadmap.json"
	RoadmapYAMLFile = "roadmap.yaml"
)

// WriteAll writes the PRD and both roadmap encodings into dir, creating it
// when needed, and returns the written paths.
func WriteAll(dir string, dc domain.DerivedContext, plan analysis.PlanReport) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	prd, err := RenderPRD(dc, plan)
	if err != nil {
		return nil, err
	}
	roadmap := BuildRoadmap(dc, plan)
	jsonData, err := RoadmapJSON(roadmap)
	if err != nil {
		return nil, err
	}
	yamlData, err := RoadmapYAML(roadmap)
	if err != nil {
		return nil, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{PRDFile, []byte(prd)},
		{RoadmapJSONFile, jsonData},
		{RoadmapYAMLFile, yamlData},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", f.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
