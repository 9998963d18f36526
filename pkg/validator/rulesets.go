package validator

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ruleOptions = map[string]bool{
	"required":   true,
	"label":      true,
	"min_length": true,
	"validate":   true,
	"message":    true,
}

type fieldSpec struct {
	Required  bool   `yaml:"required"`
	Label     string `yaml:"label"`
	MinLength int    `yaml:"min_length"`
	Validate  string `yaml:"validate"`
	Message   string `yaml:"message"`
}

// LoadRuleSets reads a YAML document that maps form names to ordered field
// rules:
//
//	register:
//	  email:
//	    required: true
//	    label: Email
//	    validate: email
//	    message: Please enter a valid email address
//	  password:
//	    required: true
//	    min_length: 8
//
// Field order in the document is the evaluation order. Predicate names are
// resolved through preds; a nil registry gets the built-in predicates.
func LoadRuleSets(r io.Reader, preds *PredicateRegistry) (map[string]*RuleSet, error) {
	if preds == nil {
		preds = NewPredicateRegistry()
	}

	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]*RuleSet{}, nil
		}
		return nil, errors.Join(ErrInvalidRuleSet, err)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of forms", ErrInvalidRuleSet, doc.Line)
	}

	sets := make(map[string]*RuleSet, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		name, body := doc.Content[i].Value, doc.Content[i+1]
		if _, dup := sets[name]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate form %q", ErrInvalidRuleSet, doc.Content[i].Line, name)
		}
		set, err := parseRuleSet(body, preds)
		if err != nil {
			return nil, fmt.Errorf("form %q: %w", name, err)
		}
		sets[name] = set
	}

	return sets, nil
}

// LoadRuleSetsFile is LoadRuleSets over a file on disk.
func LoadRuleSetsFile(path string, preds *PredicateRegistry) (map[string]*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rule sets: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadRuleSets(f, preds)
}

func parseRuleSet(node *yaml.Node, preds *PredicateRegistry) (*RuleSet, error) {
	set := NewRuleSet()
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return set, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping of fields", ErrInvalidRuleSet, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		field, body := node.Content[i].Value, node.Content[i+1]
		if _, dup := set.Get(field); dup {
			return nil, fmt.Errorf("%w: line %d: duplicate field %q", ErrInvalidRuleSet, node.Content[i].Line, field)
		}
		rule, err := parseFieldRule(body, preds)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		set.Add(field, rule)
	}

	return set, nil
}

func parseFieldRule(node *yaml.Node, preds *PredicateRegistry) (FieldRule, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return FieldRule{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return FieldRule{}, fmt.Errorf("%w: line %d: expected a mapping of options", ErrInvalidRuleSet, node.Line)
	}
	for i := 0; i < len(node.Content); i += 2 {
		if key := node.Content[i].Value; !ruleOptions[key] {
			return FieldRule{}, fmt.Errorf("%w: line %d: %q", ErrUnknownOption, node.Content[i].Line, key)
		}
	}

	var fs fieldSpec
	if err := node.Decode(&fs); err != nil {
		return FieldRule{}, errors.Join(ErrInvalidRuleSet, err)
	}
	if fs.MinLength < 0 {
		return FieldRule{}, fmt.Errorf("%w: line %d: min_length must not be negative", ErrInvalidRuleSet, node.Line)
	}

	rule := FieldRule{
		Required:  fs.Required,
		Label:     fs.Label,
		MinLength: fs.MinLength,
		Message:   fs.Message,
	}
	if fs.Validate != "" {
		p, err := preds.Lookup(fs.Validate)
		if err != nil {
			return FieldRule{}, err
		}
		rule.Validate = p
	}

	return rule, nil
}
