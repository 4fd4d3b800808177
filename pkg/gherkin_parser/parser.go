package gherkin_parser

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/google/uuid"

	"github.com/lehins/hspec/pkg/hspec"
)

const (
	FeatureExtension = ".feature"
)

// ProcedureFunc builds the procedure that runs one compiled scenario.
type ProcedureFunc func(pickle *messages.Pickle) hspec.Procedure

// SearchFeatureFilesIn walks the directories and returns every .feature file
// found, in lexical order per directory.
func SearchFeatureFilesIn(directories []string) ([]string, error) {
	featureFiles := make([]string, 0)

	for _, directory := range directories {
		err := filepath.WalkDir(directory, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), FeatureExtension) {
				featureFiles = append(featureFiles, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("could not search %s for feature files: %w", directory, err)
		}
	}
	return featureFiles, nil
}

// ParseGherkinFile parses a single Gherkin document.
func ParseGherkinFile(reader io.Reader) (*messages.GherkinDocument, error) {
	document, err := gherkin.ParseGherkinDocument(reader, uuid.NewString)
	if err != nil {
		return nil, err
	}
	return document, nil
}

// LoadFeature reads and parses the feature file at path.
func LoadFeature(path string) (*messages.GherkinDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file %s, error=%w", path, err)
	}
	defer f.Close()

	document, err := ParseGherkinFile(f)
	if err != nil {
		return nil, fmt.Errorf("gherkin parse error in file %s, error=%w", path, err)
	}
	document.Uri = path
	return document, nil
}

// BuildTree converts a parsed document into a spec tree: the feature
// becomes a group, every rule a nested group, and every compiled scenario
// (one per Examples row for outlines) an example whose procedure is built
// by proc. The second result is false when the document has no scenarios.
func BuildTree(document *messages.GherkinDocument, proc ProcedureFunc) (hspec.Group, bool) {
	if document == nil || document.Feature == nil {
		return hspec.Group{}, false
	}
	feature := document.Feature

	pickles := gherkin.Pickles(*document, document.Uri, uuid.NewString)
	if len(pickles) == 0 {
		return hspec.Group{}, false
	}

	featureTags := tagNames(feature.Tags)
	rules, ruleOf := indexRules(feature)

	root := hspec.Group{Label: featureLabel(feature, document.Uri), Tags: featureTags}
	ruleGroups := make(map[string]*hspec.Group)
	var order []slot

	rowCounts := make(map[string]int)
	for _, pickle := range pickles {
		scenarioID := ""
		if len(pickle.AstNodeIds) > 0 {
			scenarioID = pickle.AstNodeIds[0]
		}

		requirement := pickle.Name
		if len(pickle.AstNodeIds) > 1 {
			rowCounts[scenarioID]++
			requirement = fmt.Sprintf("%s #%d", pickle.Name, rowCounts[scenarioID])
		}

		rule, inRule := ruleOf[scenarioID]
		inherited := featureTags
		if inRule {
			inherited = append(append([]string(nil), featureTags...), tagNames(rule.Tags)...)
		}

		example := hspec.Specify(requirement, proc(pickle)).WithTags(ownTags(pickle.Tags, inherited)...)

		if !inRule {
			order = append(order, slot{node: example})
			continue
		}
		group, seen := ruleGroups[rule.Id]
		if !seen {
			group = &hspec.Group{Label: rules[rule.Id], Tags: tagNames(rule.Tags)}
			ruleGroups[rule.Id] = group
			order = append(order, slot{ruleID: rule.Id})
		}
		group.Children = append(group.Children, example)
	}

	for _, s := range order {
		if s.ruleID != "" {
			root.Children = append(root.Children, *ruleGroups[s.ruleID])
			continue
		}
		root.Children = append(root.Children, s.node)
	}
	return root, true
}

// slot holds either a top-level example or the position of a rule group
// whose children are still being collected.
type slot struct {
	node   hspec.Node
	ruleID string
}

func featureLabel(feature *messages.Feature, uri string) string {
	if name := strings.TrimSpace(feature.Name); name != "" {
		return name
	}
	return strings.TrimSuffix(filepath.Base(uri), FeatureExtension)
}

// indexRules maps every scenario id inside a rule to that rule, and every
// rule id to its label.
func indexRules(feature *messages.Feature) (map[string]string, map[string]*messages.Rule) {
	labels := make(map[string]string)
	ruleOf := make(map[string]*messages.Rule)
	for _, child := range feature.Children {
		if child.Rule == nil {
			continue
		}
		rule := child.Rule
		labels[rule.Id] = rule.Name
		for _, rc := range rule.Children {
			if rc.Scenario != nil {
				ruleOf[rc.Scenario.Id] = rule
			}
		}
	}
	return labels, ruleOf
}

func tagNames(tags []*messages.Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	return names
}

// ownTags drops the tags a pickle inherited from its feature and rule.
func ownTags(tags []*messages.PickleTag, inherited []string) []string {
	skip := make(map[string]int, len(inherited))
	for _, name := range inherited {
		skip[name]++
	}
	var own []string
	for _, tag := range tags {
		if skip[tag.Name] > 0 {
			skip[tag.Name]--
			continue
		}
		own = append(own, tag.Name)
	}
	return own
}
