// # internal/report/sarif.go
package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"displaylint/internal/rules"
	"displaylint/internal/version"
)

// SARIF v2.1.0 schema – see https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json

const (
	sarifSchema  = "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json"
	sarifVersion = "2.1.0"

	ruleIDDisplayName = "DISP001"
)

// sarifReport is the top-level SARIF document.
type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	ShortDescription sarifMessage           `json:"shortDescription"`
	DefaultConfig    sarifRuleDefaultConfig `json:"defaultConfiguration"`
}

type sarifRuleDefaultConfig struct {
	Level string `json:"level"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI       string `json:"uri"`
	URIBaseID string `json:"uriBaseId"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine,omitempty"`
	StartColumn int `json:"startColumn,omitempty"`
	EndLine     int `json:"endLine,omitempty"`
	EndColumn   int `json:"endColumn,omitempty"`
}

// GenerateSARIF builds a SARIF v2.1.0 document from lint diagnostics.
// All file URIs are made relative to projectRoot; absolute paths are never
// included so that reports are safe to share.
func GenerateSARIF(projectRoot string, diagnostics []rules.Diagnostic) ([]byte, error) {
	results := make([]sarifResult, 0, len(diagnostics))
	for _, d := range diagnostics {
		result := sarifResult{
			RuleID:  sarifRuleID(d.Rule),
			Level:   severityToLevel(d.Severity),
			Message: sarifMessage{Text: d.Message},
		}
		if d.Span.Start.File != "" {
			loc := sarifLocation{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{
						URI:       relativeURI(projectRoot, d.Span.Start.File),
						URIBaseID: "%SRCROOT%",
					},
				},
			}
			if d.Span.Start.Line > 0 {
				loc.PhysicalLocation.Region = &sarifRegion{
					StartLine:   d.Span.Start.Line,
					StartColumn: d.Span.Start.Column,
					EndLine:     d.Span.End.Line,
					EndColumn:   d.Span.End.Column,
				}
			}
			result.Locations = []sarifLocation{loc}
		}
		results = append(results, result)
	}

	doc := sarifReport{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:    "displaylint",
						Version: version.Version,
						Rules:   buildSARIFRules(diagnostics),
					},
				},
				Results: results,
			},
		},
	}

	return json.MarshalIndent(doc, "", "  ")
}

// buildSARIFRules returns only the rules present in the given findings.
func buildSARIFRules(diagnostics []rules.Diagnostic) []sarifRule {
	seen := make(map[string]bool)
	out := make([]sarifRule, 0, 1)
	for _, d := range diagnostics {
		id := sarifRuleID(d.Rule)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, sarifRule{
			ID:               id,
			Name:             "ComponentMissingDisplayName",
			ShortDescription: sarifMessage{Text: "A UI component has no statically derivable display name."},
			DefaultConfig:    sarifRuleDefaultConfig{Level: severityToLevel(d.Severity)},
		})
	}
	return out
}

func sarifRuleID(rule string) string {
	switch rule {
	case "display-name":
		return ruleIDDisplayName
	default:
		return fmt.Sprintf("DISP-%s", rule)
	}
}

func severityToLevel(s rules.Severity) string {
	switch s {
	case rules.SeverityError:
		return "error"
	case rules.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

// relativeURI converts an absolute file path to a forward-slash relative URI
// anchored at projectRoot. If the path is already relative or projectRoot is
// empty, the original path (with forward slashes) is returned.
func relativeURI(projectRoot, filePath string) string {
	if projectRoot != "" && filepath.IsAbs(filePath) {
		rel, err := filepath.Rel(projectRoot, filePath)
		if err == nil {
			filePath = rel
		}
	}
	// SARIF URIs use forward slashes.
	return filepath.ToSlash(filePath)
}
