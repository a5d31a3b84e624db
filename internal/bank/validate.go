package bank

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the instrument definition.
// Returns a combined error describing every problem found, or nil.
func Validate() error {
	return validateBank(modules, clusters)
}

func validateBank(mods []Module, cat []CareerCluster) error {
	var errs []string

	validDomains := make(map[Domain]bool)
	for _, d := range AllDomains() {
		validDomains[d] = true
	}

	seenModules := make(map[ModuleID]bool)
	itemIDs := make(map[string]bool)

	for _, m := range mods {
		if seenModules[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate module ID: %q", m.ID))
		}
		seenModules[m.ID] = true

		if len(m.Items) == 0 {
			errs = append(errs, fmt.Sprintf("module %q has no items", m.ID))
		}

		for _, item := range m.Items {
			prefix := fmt.Sprintf("module %q item %q", m.ID, item.ID)
			if itemIDs[item.ID] {
				errs = append(errs, fmt.Sprintf("%s: duplicate item ID", prefix))
			}
			itemIDs[item.ID] = true
			if item.Prompt == "" {
				errs = append(errs, prefix+": empty prompt")
			}

			switch m.Kind {
			case KindForcedChoice:
				if len(item.Options) < 2 {
					errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(item.Options)))
				}
				for i, o := range item.Options {
					if !validDomains[o.Domain] {
						errs = append(errs, fmt.Sprintf("%s option %d: invalid domain %q", prefix, i, o.Domain))
					}
				}

			case KindTimedChoice:
				if len(item.Options) < 2 {
					errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(item.Options)))
				}
				correct := 0
				for i, o := range item.Options {
					if !validDomains[o.Domain] {
						errs = append(errs, fmt.Sprintf("%s option %d: invalid domain %q", prefix, i, o.Domain))
					}
					if o.Correct {
						correct++
					}
				}
				if correct != 1 {
					errs = append(errs, fmt.Sprintf("%s: want exactly 1 correct option, got %d", prefix, correct))
				}

			case KindOpenEnded:
				if !validDomains[item.Domain] {
					errs = append(errs, fmt.Sprintf("%s: invalid domain %q", prefix, item.Domain))
				}
				if item.MinWords <= 0 {
					errs = append(errs, fmt.Sprintf("%s: MinWords must be > 0, got %d", prefix, item.MinWords))
				}
				if item.MaxWords < item.MinWords {
					errs = append(errs, fmt.Sprintf("%s: MaxWords %d < MinWords %d", prefix, item.MaxWords, item.MinWords))
				}

			case KindFriction:
				if len(item.Options) < 2 {
					errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(item.Options)))
				}
				for i, o := range item.Options {
					if o.Score < 0 || o.Score > 2 {
						errs = append(errs, fmt.Sprintf("%s option %d: score must be in [0,2], got %d", prefix, i, o.Score))
					}
					switch o.FrictionLevel {
					case FrictionLow, FrictionMedium, FrictionHigh:
					default:
						errs = append(errs, fmt.Sprintf("%s option %d: invalid friction level %q", prefix, i, o.FrictionLevel))
					}
				}

			default:
				errs = append(errs, fmt.Sprintf("module %q: unknown kind %q", m.ID, m.Kind))
			}
		}
	}

	for _, id := range ModuleOrder() {
		if !seenModules[id] {
			errs = append(errs, fmt.Sprintf("module %q missing from bank", id))
		}
	}

	clusterIDs := make(map[string]bool)
	for _, c := range cat {
		prefix := fmt.Sprintf("cluster %q", c.ID)
		if clusterIDs[c.ID] {
			errs = append(errs, prefix+": duplicate cluster ID")
		}
		clusterIDs[c.ID] = true
		if len(c.Domains) == 0 {
			errs = append(errs, prefix+": no governing domains")
		}
		for _, d := range c.Domains {
			if !validDomains[d] {
				errs = append(errs, fmt.Sprintf("%s: invalid domain %q", prefix, d))
			}
		}
		for _, tier := range []SkillTier{TierExplore, TierDevelop, TierAdvanced} {
			if len(c.Opportunities[tier]) == 0 {
				errs = append(errs, fmt.Sprintf("%s: no opportunities for tier %q", prefix, tier))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
