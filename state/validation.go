package state

import (
	"fmt"
	"regexp"
	"slices"
)

var namePattern, _ = regexp.Compile("^[0-9a-z._-]+$")

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%s is not a valid name, must match pattern %s", s, namePattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("len(\"%s\") = %d > 100 is too long", s, len(s))
	}
	return nil
}

func RouterConfigValidator(cfg *RouterCfg) error {
	err := NameValidator(cfg.Name)
	if err != nil {
		return err
	}
	if cfg.As == 0 {
		return fmt.Errorf("router %s has no AS number", cfg.Name)
	}
	seen := make([]AsId, 0, len(cfg.Policy))
	for _, rule := range cfg.Policy {
		if rule.Neighbour == 0 {
			return fmt.Errorf("policy rule has no neighbour AS")
		}
		if rule.Neighbour == cfg.As {
			return fmt.Errorf("policy rule for AS%d refers to the router itself", rule.Neighbour)
		}
		if slices.Contains(seen, rule.Neighbour) {
			return fmt.Errorf("duplicate policy rule for AS%d", rule.Neighbour)
		}
		seen = append(seen, rule.Neighbour)
	}
	if cfg.Validation.MaxPathLen < 0 {
		return fmt.Errorf("validation.max_path_len must not be negative")
	}
	for _, prefix := range cfg.Validation.DenyPrefixes {
		if !prefix.IsValid() {
			return fmt.Errorf("invalid deny prefix %s", prefix)
		}
	}
	return nil
}

func ScenarioValidator(cfg *ScenarioCfg) error {
	err := RouterConfigValidator(&cfg.Router)
	if err != nil {
		return err
	}
	for i, adv := range cfg.Advertisements {
		if adv.Destination == "" {
			return fmt.Errorf("advertisement %d has no destination", i)
		}
	}
	return nil
}
