package routine

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/arbiter/internal/yml"
	"gopkg.in/yaml.v3"
)

// Decode parses a routine document. URL is recorded as the source and, when
// the document declares no name, supplies it from the file name.
func Decode(URL string, data []byte) (*Routine, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to decode routine %s: %w", URL, err)
	}
	ret := &Routine{Source: &Source{URL: URL}, Name: nameFromURL(URL)}
	root := (*yml.Node)(&node).Root()
	if !root.IsMapping() {
		return nil, fmt.Errorf("routine %s: document should be a mapping", URL)
	}
	err := root.Pairs(func(key string, value *yml.Node) error {
		var err error
		switch strings.ToLower(key) {
		case "name":
			ret.Name, err = value.String()
		case "description":
			ret.Description, err = value.String()
		case "routine":
			ret.Root, err = parseStep(value)
		default:
			err = fmt.Errorf("%s: unknown routine key %q", value.Position(), key)
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse routine %s: %w", URL, err)
	}
	assignPaths(ret.Root, ret.Name)
	if issues := ret.Validate(); len(issues) > 0 {
		return nil, issues[0]
	}
	return ret, nil
}

func nameFromURL(URL string) string {
	if URL == "" {
		return ""
	}
	base := filepath.Base(URL)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func parseStep(node *yml.Node) (*Step, error) {
	if node.IsScalar() {
		if node.Value == "" {
			return nil, fmt.Errorf("%s: empty step", node.Position())
		}
		return &Step{Kind: KindCommand, Command: node.Value}, nil
	}
	if !node.IsMapping() {
		return nil, fmt.Errorf("%s: step should be a name or a mapping", node.Position())
	}
	step := &Step{}
	setKind := func(kind Kind, value *yml.Node) error {
		if step.Kind != "" {
			return fmt.Errorf("%s: step declares both %s and %s", value.Position(), step.Kind, kind)
		}
		step.Kind = kind
		return nil
	}
	err := node.Pairs(func(key string, value *yml.Node) error {
		var err error
		switch strings.ToLower(key) {
		case "command":
			if err = setKind(KindCommand, value); err == nil {
				step.Command, err = value.String()
			}
		case "wait":
			if err = setKind(KindWait, value); err == nil {
				step.Wait, err = value.Duration()
			}
		case "waituntil":
			if err = setKind(KindWaitUntil, value); err == nil {
				step.WaitUntil, err = value.String()
			}
		case "sequence", "parallel", "race", "deadline":
			kind := map[string]Kind{"sequence": KindSequence, "parallel": KindParallel, "race": KindRace, "deadline": KindDeadline}[strings.ToLower(key)]
			if err = setKind(kind, value); err == nil {
				step.Steps, err = parseSteps(value)
			}
		case "repeat", "proxy":
			kind := KindRepeat
			if strings.EqualFold(key, "proxy") {
				kind = KindProxy
			}
			if err = setKind(kind, value); err == nil {
				step.Inner, err = parseStep(value)
			}
		case "either":
			if err = setKind(KindEither, value); err == nil {
				step.Either, err = parseBranch(value)
			}
		case "name":
			step.Name, err = value.String()
		case "timeout":
			step.Timeout, err = value.Duration()
		case "until":
			step.Until, err = value.String()
		case "unless":
			step.Unless, err = value.String()
		case "onlyif":
			step.OnlyIf, err = value.String()
		case "ignoringdisable":
			var flag bool
			if flag, err = value.Bool(); err == nil {
				step.IgnoringDisable = &flag
			}
		case "interruptbehavior":
			step.InterruptBehavior, err = value.String()
		case "perpetually":
			step.Perpetually, err = value.Bool()
		default:
			err = fmt.Errorf("%s: unknown step key %q", value.Position(), key)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return step, nil
}

func parseSteps(node *yml.Node) ([]*Step, error) {
	if !node.IsSequence() {
		return nil, fmt.Errorf("%s: expected a list of steps", node.Position())
	}
	var ret []*Step
	err := node.Items(func(_ int, item *yml.Node) error {
		step, err := parseStep(item)
		if err != nil {
			return err
		}
		ret = append(ret, step)
		return nil
	})
	return ret, err
}

func parseBranch(node *yml.Node) (*Branch, error) {
	if !node.IsMapping() {
		return nil, fmt.Errorf("%s: either should be a mapping", node.Position())
	}
	ret := &Branch{}
	err := node.Pairs(func(key string, value *yml.Node) error {
		var err error
		switch strings.ToLower(key) {
		case "if":
			ret.If, err = value.String()
		case "then":
			ret.Then, err = parseStep(value)
		case "else":
			ret.Else, err = parseStep(value)
		default:
			err = fmt.Errorf("%s: unknown either key %q", value.Position(), key)
		}
		return err
	})
	return ret, err
}

// assignPaths labels every step with its location, rooted at name.
func assignPaths(step *Step, path string) {
	if step == nil {
		return
	}
	step.Path = path
	for i, child := range step.Steps {
		assignPaths(child, fmt.Sprintf("%s/%s[%d]", path, step.Kind, i))
	}
	if step.Inner != nil {
		assignPaths(step.Inner, path+"/"+string(step.Kind))
	}
	if step.Either != nil {
		assignPaths(step.Either.Then, path+"/then")
		assignPaths(step.Either.Else, path+"/else")
	}
}
